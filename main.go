package main

import (
	"os"

	"github.com/khuswant18/paddle-ocr/cmd"
	"github.com/khuswant18/paddle-ocr/logger"
)

func main() {
	logger.Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	cmd.Execute()
}
