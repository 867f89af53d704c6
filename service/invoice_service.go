package service

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/khuswant18/paddle-ocr/client"
	"github.com/khuswant18/paddle-ocr/dto"
	"github.com/khuswant18/paddle-ocr/extractor"
	"github.com/khuswant18/paddle-ocr/logger"
)

// minTextLayerChars is the cutoff below which a PDF text layer is
// treated as absent and the document is handled as a scan.
const minTextLayerChars = 20

// InvoiceService runs the full pipeline: document bytes to OCR text to
// a structured invoice record.
type InvoiceService struct {
	paddleClient    *client.PaddleClient
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
	extractor       *extractor.Extractor
}

func NewInvoiceService(paddleClient *client.PaddleClient, tesseractClient *client.TesseractClient, pdfProcessor PDFProcessor, threshold int) *InvoiceService {
	return &InvoiceService{
		paddleClient:    paddleClient,
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
		extractor:       extractor.New(threshold),
	}
}

// ProcessInvoice extracts a structured invoice record from an uploaded
// document (PDF or image).
func (s *InvoiceService) ProcessInvoice(fileData []byte, filename string) (*dto.ExtractResponse, error) {
	log := logger.WithComponent("invoice-service")

	text, images, err := s.extractText(fileData, filename)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, dto.ErrNoText
	}

	// E-invoices commonly carry an IRN QR code. Decode is best effort;
	// a missing or unreadable code never fails the request.
	qrPayload := ""
	for _, img := range images {
		if payload, err := decodeQR(img); err == nil {
			qrPayload = payload
			break
		}
	}

	record := s.extractor.Extract(text)
	if extractor.SubtotalMismatch(record) {
		log.Warn().
			Str("invoice_number", record.InvoiceNumber).
			Float64("subtotal", record.Subtotal).
			Float64("item_sum", record.ItemSum()).
			Msg("subtotal deviates from item sum by more than 10%")
	}

	return &dto.ExtractResponse{
		Success:       true,
		RequestID:     uuid.NewString(),
		ExtractedText: text,
		Invoice:       *record,
		Summary:       extractor.Summary(record),
		QRPayload:     qrPayload,
		ProcessedAt:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ExtractFromText runs the extraction pipeline over text that has
// already been OCR'd elsewhere.
func (s *InvoiceService) ExtractFromText(text string) (*dto.ExtractResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, dto.ErrNoText
	}

	record := s.extractor.Extract(text)
	return &dto.ExtractResponse{
		Success:       true,
		RequestID:     uuid.NewString(),
		ExtractedText: text,
		Invoice:       *record,
		Summary:       extractor.Summary(record),
		ProcessedAt:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// extractText resolves document bytes to OCR text. For PDFs the
// embedded text layer wins when present; otherwise page images are
// OCR'd one by one. The page images are also returned so the caller
// can probe them for QR codes.
func (s *InvoiceService) extractText(fileData []byte, filename string) (string, []image.Image, error) {
	log := logger.WithComponent("invoice-service")
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == ".pdf" {
		text, err := s.pdfProcessor.ExtractText(fileData)
		if err == nil && len(strings.TrimSpace(text)) >= minTextLayerChars {
			log.Debug().Int("chars", len(text)).Msg("using PDF text layer")
			return text, nil, nil
		}

		log.Debug().Msg("text layer missing or sparse, running OCR on page images")
		images, err := s.pdfProcessor.ExtractImages(fileData)
		if err != nil {
			return "", nil, fmt.Errorf("failed to extract page images: %w", err)
		}
		if len(images) == 0 {
			return "", nil, dto.ErrNoText
		}

		var fullText strings.Builder
		for idx, page := range images {
			buf := new(bytes.Buffer)
			if err := png.Encode(buf, page); err != nil {
				log.Warn().Int("page", idx+1).Err(err).Msg("failed to encode page")
				continue
			}

			pageText, err := s.ocrImage(buf.Bytes())
			if err != nil {
				log.Warn().Int("page", idx+1).Err(err).Msg("page OCR failed")
				continue
			}

			fullText.WriteString(pageText)
			fullText.WriteString("\n")
		}
		return fullText.String(), images, nil
	}

	// Plain image upload.
	text, err := s.ocrImage(fileData)
	if err != nil {
		return "", nil, err
	}

	var images []image.Image
	if img, _, err := image.Decode(bytes.NewReader(fileData)); err == nil {
		images = append(images, img)
	}
	return text, images, nil
}

// ocrImage runs OCR on raw image bytes: PaddleOCR first, Tesseract as
// the fallback engine.
func (s *InvoiceService) ocrImage(data []byte) (string, error) {
	log := logger.WithComponent("invoice-service")

	text, err := s.paddleClient.ProcessImageBytes(data)
	if err == nil {
		return text, nil
	}
	log.Debug().Err(err).Msg("PaddleOCR failed, falling back to Tesseract")

	tempPath, err := client.CreateTempFileFromBytes(data, "page-*.png")
	if err != nil {
		return "", err
	}
	defer client.RemoveTempFile(tempPath)

	return s.tesseractClient.ProcessImage(tempPath)
}

// decodeQR attempts to read a QR code out of a page image.
func decodeQR(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	qrReader := qrcode.NewQRCodeReader()
	result, err := qrReader.Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}
	return result.GetText(), nil
}
