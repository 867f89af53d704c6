package dto

import "errors"

var (
	ErrNoFile          = errors.New("no file provided")
	ErrInvalidFileType = errors.New("invalid file type, expected pdf, png, jpg or jpeg")
	ErrNoText          = errors.New("no text could be extracted from document")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ExtractResponse is the final response for an invoice extraction request.
type ExtractResponse struct {
	Success       bool          `json:"success"`
	RequestID     string        `json:"request_id"`
	ExtractedText string        `json:"extracted_text"`
	Invoice       InvoiceRecord `json:"invoice"`
	Summary       string        `json:"summary"`
	QRPayload     string        `json:"qr_payload,omitempty"`
	ProcessedAt   string        `json:"processed_at"`
}
