package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khuswant18/paddle-ocr/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "paddle-ocr",
	Short: "Invoice OCR extraction service and CLI",
	Long: `paddle-ocr turns invoice and receipt scans into structured records.

It combines PaddleOCR (primary) and Tesseract (fallback) for text
recognition with a keyword-driven extraction pipeline that recovers
invoice numbers, dates, parties, line items, amounts, and bank details
from noisy OCR text.

Run "paddle-ocr serve" to start the HTTP API, or "paddle-ocr extract"
to process a single document from the command line.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().Err(err).Msg("command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
