package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/farhan/phish-triage/internal/config"
	"github.com/farhan/phish-triage/internal/core"
	"github.com/farhan/phish-triage/internal/di"
	"github.com/farhan/phish-triage/internal/logging"
)

var (
	// Model flags
	artifactPath      = flag.String("artifact", "", "Path to the model artifact JSON file")
	phishingThreshold = flag.Float64("phishing-threshold", 0.75, "Probability at or above which an email is phishing")
	safeThreshold     = flag.Float64("safe-threshold", 0.40, "Probability below which an email is safe")

	// Triage flags
	senderHint     = flag.String("sender", "", "Sender address to analyze (overrides the address extracted from the text)")
	trustedDomains = flag.String("trusted", "", "Comma-separated list of trusted sender domains")
	maxTextSize    = flag.Int("max-text-size", 524288, "Maximum email text size in bytes")

	// Input flags
	inputFile  = flag.String("file", "", "Input email text file (use stdin if not specified)")
	jsonOutput = flag.Bool("json", false, "Print the classification result as JSON")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var container *dig.Container

	// With a config file the container owns config and logger; otherwise both
	// come from the flags.
	if *configFile != "" {
		container, err = di.BuildContainer()
	} else {
		container, err = di.BuildContainerFromViper(createConfigFromFlags(), logger)
	}
	if err != nil {
		logger.Fatal("Failed to build dependency container", zap.Error(err))
	}

	err = container.Invoke(func(svc *core.TriageService, cache core.CacheRepository) error {
		defer stopCache(cache, logger)

		text, err := readEmailText(logger)
		if err != nil {
			return err
		}

		result, err := svc.Classify(context.Background(), core.EmailDocument{
			Text:       text,
			SenderHint: *senderHint,
		})
		if err != nil {
			return err
		}

		if *jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		printReport(result)
		return nil
	})
	if err != nil {
		logger.Fatal("Failed to classify email", zap.Error(err))
	}
}

// readEmailText reads the raw email text from the input file or stdin
func readEmailText(logger *zap.Logger) (string, error) {
	var reader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to open input file %s: %w", *inputFile, err)
		}
		defer file.Close()
		reader = file
		logger.Info("Reading email from file", zap.String("file", *inputFile))
	} else {
		reader = os.Stdin
		logger.Info("Reading email from stdin")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read email text: %w", err)
	}
	return string(data), nil
}

// printReport prints a human-readable classification report
func printReport(result *core.ClassificationResult) {
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Verdict: %s\n", result.Verdict)
	fmt.Printf("Phishing probability: %.4f\n", result.PhishingProbability)
	fmt.Printf("Safe probability: %.4f\n", result.SafeProbability)
	fmt.Printf("Extracted sender: %s\n", result.ExtractedSender)
	if result.ExtractedDate != "" {
		fmt.Printf("Extracted date: %s\n", result.ExtractedDate)
	}
	fmt.Printf("Suspicious keywords: %d, urgency words: %d, URLs: %d, exclamations: %d\n",
		result.FeatureSummary.SuspiciousKeywords,
		result.FeatureSummary.UrgencyWords,
		result.FeatureSummary.URLs,
		result.FeatureSummary.Exclamations)
	fmt.Printf("Model used: %s\n", result.ModelUsed)

	fmt.Printf("\n=== Explanation ===\n")
	for _, line := range result.Explanation {
		fmt.Println(line)
	}
}

// stopCache stops the cache's background cleanup task if it has one
func stopCache(cache core.CacheRepository, logger *zap.Logger) {
	if stopper, ok := cache.(interface{ Stop() }); ok {
		stopper.Stop()
	} else {
		logger.Debug("Cache repository has no Stop method")
	}
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	if *artifactPath != "" {
		v.Set("artifact.path", *artifactPath)
	}
	v.Set("decision.phishing_threshold", *phishingThreshold)
	v.Set("decision.safe_threshold", *safeThreshold)
	v.Set("triage.max_text_size", *maxTextSize)

	// One-shot invocations have nothing to gain from caching
	v.Set("cache.enabled", false)
	v.Set("cache.type", "memory")

	if *trustedDomains != "" {
		domains := strings.Split(*trustedDomains, ",")
		for i, domain := range domains {
			domains[i] = strings.TrimSpace(domain)
		}
		v.Set("triage.trusted_domains", domains)
	} else {
		v.Set("triage.trusted_domains", []string{})
	}

	return config.NewFromViper(v)
}
