package cmd

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/khuswant18/paddle-ocr/client"
	"github.com/khuswant18/paddle-ocr/config"
	"github.com/khuswant18/paddle-ocr/handler"
	"github.com/khuswant18/paddle-ocr/logger"
	"github.com/khuswant18/paddle-ocr/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the invoice extraction HTTP API",
	Long: `Start the HTTP server exposing the invoice extraction API.

Endpoints:
  GET  /health                  Liveness check
  POST /api/v1/invoice/extract  Multipart upload (field "file"),
                                returns the structured invoice record`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "", "Listen port (overrides SERVER_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log := logger.WithComponent("serve")
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.ServerPort = port
	}

	// Tesseract v5 reads its language data from this env var.
	os.Setenv("TESSDATA_PREFIX", cfg.TessdataPrefix)

	paddleClient := client.NewPaddleClient(cfg.PaddleAPIURL)
	tesseractClient := client.NewTesseractClient(cfg.TessdataPrefix)
	pdfProcessor := service.NewPDFProcessor()

	invoiceService := service.NewInvoiceService(paddleClient, tesseractClient, pdfProcessor, cfg.FuzzyThreshold)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.MaxFileSize

	router.GET("/health", invoiceHandler.Health)

	api := router.Group("/api/v1")
	{
		invoice := api.Group("/invoice")
		{
			invoice.POST("/extract", invoiceHandler.ExtractInvoice)
		}
	}

	log.Info().
		Str("port", cfg.ServerPort).
		Str("paddle_url", cfg.PaddleAPIURL).
		Int("fuzzy_threshold", cfg.FuzzyThreshold).
		Msg("starting invoice extraction service")

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
