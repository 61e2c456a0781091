package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Code-Monger/ToBeBot/pkg/logging"
)

var (
	serverURL   = flag.String("server", "http://localhost:8080", "MCP server URL")
	timeoutSecs = flag.Int("timeout", 60, "Client timeout in seconds")
	testTool    = flag.String("tool", "validate_sentence", "Tool to test (validate_sentence, validation_stats)")
	sentence    = flag.String("sentence", "", "Validate this sentence instead of the built-in samples")
	format      = flag.String("format", "text", "Output format requested from validate_sentence (text, json)")
)

func main() {
	flag.Parse()

	logger, err := logging.New("info", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Create a context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeoutSecs)*time.Second)
	defer cancel()

	// Cancel on termination signals
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := NewClient(*serverURL, logger)
	opts := RunOptions{Tool: *testTool, Format: *format}
	if *sentence != "" {
		opts.Sentences = []string{*sentence}
	}

	if err := c.Run(ctx, opts); err != nil {
		logger.Fatal("Client failed", zap.Error(err))
	}

	logger.Info("Client operations completed successfully")
}
