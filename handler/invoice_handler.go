package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khuswant18/paddle-ocr/dto"
	"github.com/khuswant18/paddle-ocr/logger"
	"github.com/khuswant18/paddle-ocr/service"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// ExtractInvoice handles POST /api/v1/invoice/extract. It accepts a
// multipart upload under the "file" field and returns the structured
// invoice record.
func (h *InvoiceHandler) ExtractInvoice(c *gin.Context) {
	log := logger.WithComponent("invoice-handler")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "EXTRACTION_FAILED", dto.ErrNoFile)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		h.sendError(c, http.StatusBadRequest, "EXTRACTION_FAILED", dto.ErrInvalidFileType)
		return
	}

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "EXTRACTION_FAILED", err)
		return
	}

	log.Info().
		Str("filename", header.Filename).
		Int("size", len(fileData)).
		Msg("processing invoice upload")

	response, err := h.invoiceService.ProcessInvoice(fileData, header.Filename)
	if err != nil {
		h.sendError(c, statusForError(err), "EXTRACTION_FAILED", err)
		return
	}

	log.Info().
		Str("request_id", response.RequestID).
		Str("invoice_number", response.Invoice.InvoiceNumber).
		Int("items", len(response.Invoice.Items)).
		Msg("invoice extraction completed")
	c.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (h *InvoiceHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusForError maps extraction failures to an HTTP status. A document the
// OCR engines produced no text from is an unprocessable upload, not a server
// fault.
func statusForError(err error) int {
	if errors.Is(err, dto.ErrNoText) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (h *InvoiceHandler) sendError(c *gin.Context, statusCode int, code string, err error) {
	log := logger.WithComponent("invoice-handler")
	log.Error().Err(err).Int("status", statusCode).Msg("request failed")

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: err.Error(),
		Code:    statusCode,
	})
}
