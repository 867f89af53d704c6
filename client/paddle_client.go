package client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/khuswant18/paddle-ocr/logger"
)

// PaddleClient talks to a PaddleOCR REST service. It is the preferred OCR
// engine for invoice scans; Tesseract covers for it when the service is
// down.
type PaddleClient struct {
	apiURL string
	http   *http.Client
}

func NewPaddleClient(apiURL string) *PaddleClient {
	return &PaddleClient{
		apiURL: apiURL,
		http:   &http.Client{Timeout: 120 * time.Second},
	}
}

// ProcessImage sends an image file to the PaddleOCR API and returns the
// recognized text, one line per detected text region.
func (p *PaddleClient) ProcessImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	return p.ProcessImageBytes(data)
}

// ProcessImageBytes runs OCR over raw image bytes.
func (p *PaddleClient) ProcessImageBytes(data []byte) (string, error) {
	log := logger.WithComponent("paddle-client")

	payload := map[string]interface{}{
		"images": []string{base64.StdEncoding.EncodeToString(data)},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := p.http.Post(p.apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to call PaddleOCR API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("PaddleOCR API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Results [][]struct {
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode PaddleOCR response: %w", err)
	}

	var text strings.Builder
	if len(result.Results) > 0 {
		for _, line := range result.Results[0] {
			text.WriteString(line.Text)
			text.WriteString("\n")
		}
	}

	extracted := text.String()
	if strings.TrimSpace(extracted) == "" {
		return "", fmt.Errorf("PaddleOCR extracted no text")
	}

	log.Debug().Int("chars", len(extracted)).Msg("PaddleOCR extraction done")
	return extracted, nil
}
