package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/farhan/phish-triage/internal/adapters/classifier"
	"github.com/farhan/phish-triage/internal/logging"
)

var (
	artifactPath = flag.String("artifact", "", "Path to the model artifact JSON file")
	jsonOutput   = flag.Bool("json", false, "Print the model metadata as JSON")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, false)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *artifactPath == "" {
		fmt.Println("Usage: model-info -artifact <path>")
		os.Exit(2)
	}

	artifact, err := classifier.Load(*artifactPath, logger)
	if err != nil {
		logger.Fatal("Failed to load model artifact", zap.Error(err))
	}

	info := artifact.Info()

	if *jsonOutput {
		if err := json.NewEncoder(os.Stdout).Encode(info); err != nil {
			logger.Fatal("Failed to encode model metadata", zap.Error(err))
		}
		return
	}

	fmt.Printf("Model type: %s\n", info.ModelType)
	fmt.Printf("Version: %s\n", info.Version)
	fmt.Printf("Creation date: %s\n", info.CreationDate)
	fmt.Printf("Numeric features: %d\n", len(artifact.Schema()))
	fmt.Printf("Text dimensions: %d\n", artifact.Vectorizer().Dimensions())
}
