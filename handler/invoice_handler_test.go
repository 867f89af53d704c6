package handler

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/khuswant18/paddle-ocr/dto"
)

func newTestRouter(h *InvoiceHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", h.Health)
	router.POST("/api/v1/invoice/extract", h.ExtractInvoice)
	return router
}

func TestHealth(t *testing.T) {
	router := newTestRouter(NewInvoiceHandler(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestExtractInvoiceMissingFile(t *testing.T) {
	router := newTestRouter(NewInvoiceHandler(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoice/extract", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrNoFile.Error())
}

func TestExtractInvoiceRejectsFileType(t *testing.T) {
	router := newTestRouter(NewInvoiceHandler(nil))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "invoice.txt")
	assert.NoError(t, err)
	_, err = part.Write([]byte("plain text upload"))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoice/extract", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid file type")
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, statusForError(dto.ErrNoText))
	assert.Equal(t, http.StatusUnprocessableEntity,
		statusForError(fmt.Errorf("process invoice: %w", dto.ErrNoText)))
	assert.Equal(t, http.StatusInternalServerError, statusForError(errors.New("paddle unreachable")))
}
