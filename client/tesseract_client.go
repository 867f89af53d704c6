package client

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient runs local Tesseract OCR over invoice images. It is the
// fallback engine when PaddleOCR is unreachable.
type TesseractClient struct {
	tessdataPrefix string
}

func NewTesseractClient(tessdataPrefix string) *TesseractClient {
	return &TesseractClient{tessdataPrefix: tessdataPrefix}
}

// ProcessImage extracts text from an image file. An empty result is reported
// as an error so callers can fall through to another engine.
func (tc *TesseractClient) ProcessImage(path string) (string, error) {
	c := gosseract.NewClient()
	defer c.Close()

	c.SetTessdataPrefix(tc.tessdataPrefix)
	if err := c.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := c.SetImage(path); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	if text == "" {
		return "", fmt.Errorf("tesseract extracted no text from %s", filepath.Base(path))
	}
	return text, nil
}

// CreateTempFileFromBytes writes raw bytes to a temporary file using the
// given CreateTemp pattern. The caller removes the file.
func CreateTempFileFromBytes(data []byte, pattern string) (string, error) {
	tempFile, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	defer tempFile.Close()

	if _, err := tempFile.Write(data); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}
	return tempFile.Name(), nil
}

// RemoveTempFile deletes a temporary file created by the helpers above.
func RemoveTempFile(path string) {
	os.Remove(path)
}
