package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khuswant18/paddle-ocr/client"
	"github.com/khuswant18/paddle-ocr/config"
	"github.com/khuswant18/paddle-ocr/dto"
	"github.com/khuswant18/paddle-ocr/extractor"
	"github.com/khuswant18/paddle-ocr/logger"
	"github.com/khuswant18/paddle-ocr/service"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract a structured invoice record from a single document",
	Long: `Process one invoice document (PDF or image) and print the result.

By default a human-readable summary is printed. Use --json for the full
structured record, or --text to skip OCR and run extraction over a
plain-text file that already contains OCR output.`,
	Example: `  # Summary to stdout
  paddle-ocr extract invoice.pdf

  # Full record as JSON, saved to a file
  paddle-ocr extract invoice.pdf --json -o invoice.json

  # Re-run extraction over saved OCR text
  paddle-ocr extract ocr-dump.txt --text --json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().Bool("json", false, "Print the full record as JSON")
	extractCmd.Flags().Bool("summary", true, "Print the human-readable summary")
	extractCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().Bool("text", false, "Treat the input as pre-extracted OCR text")
	extractCmd.Flags().Int("threshold", 0, "Fuzzy match threshold 1-100 (overrides FUZZY_THRESHOLD)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract")

	asJSON, _ := cmd.Flags().GetBool("json")
	asSummary, _ := cmd.Flags().GetBool("summary")
	outputPath, _ := cmd.Flags().GetString("output")
	asText, _ := cmd.Flags().GetBool("text")
	threshold, _ := cmd.Flags().GetInt("threshold")

	cfg := config.LoadConfig()
	if threshold > 0 && threshold <= 100 {
		cfg.FuzzyThreshold = threshold
	}

	path := args[0]
	fileData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	paddleClient := client.NewPaddleClient(cfg.PaddleAPIURL)
	tesseractClient := client.NewTesseractClient(cfg.TessdataPrefix)
	pdfProcessor := service.NewPDFProcessor()
	invoiceService := service.NewInvoiceService(paddleClient, tesseractClient, pdfProcessor, cfg.FuzzyThreshold)

	var response *dto.ExtractResponse
	if asText {
		response, err = invoiceService.ExtractFromText(string(fileData))
	} else {
		response, err = invoiceService.ProcessInvoice(fileData, path)
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	log.Info().
		Str("file", path).
		Str("invoice_number", response.Invoice.InvoiceNumber).
		Int("items", len(response.Invoice.Items)).
		Msg("extraction completed")

	var output string
	if asSummary {
		output = response.Summary
	}
	if asJSON {
		output, err = extractor.ToJSON(&response.Invoice)
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(output+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		log.Info().Str("output", outputPath).Msg("result written")
		return nil
	}

	fmt.Println(output)
	return nil
}
