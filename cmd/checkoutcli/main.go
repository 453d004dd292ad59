package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"checkout-client/internal/clients/checkout"
	"checkout-client/internal/config"
	"checkout-client/internal/credentials"
	"checkout-client/internal/services/metrics"
	"checkout-client/internal/transport"
	"checkout-client/internal/utils"
	"checkout-client/pkg/errors"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: checkoutcli <create|get|refund|providers> [transactionId]")
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	mode := credentials.ModeLive
	if cfg.Checkout.TestMode {
		mode = credentials.ModeTest
	}
	creds, err := credentials.New(mode, cfg.Checkout.MerchantID, cfg.Checkout.SecretKey)
	if err != nil {
		logger.Fatal("invalid credentials", zap.Error(err))
	}

	client := checkout.NewClient(
		creds,
		transport.NewHTTPTransport(cfg.Checkout.HTTPTimeout, logger),
		checkout.Options{
			BaseURL:          cfg.Checkout.BaseURL,
			RequireHTTPSURLs: cfg.Checkout.RequireHTTPSURLs,
			Metrics:          metrics.NewService(),
		},
		logger,
	)

	ctx := context.Background()
	nonce := utils.NewNonce()

	var result interface{}
	switch os.Args[1] {
	case "create":
		// Test mode substitutes the sandbox payload; live callers are
		// expected to pipe a payload in via their own integration, not
		// this demo binary.
		result, err = client.CreatePayment(ctx, nonce, nil)
	case "get":
		result, err = client.GetPayment(ctx, nonce, argAt(2))
	case "refund":
		result, err = client.Refund(ctx, nonce, argAt(2))
	case "providers":
		result, err = client.ListProviders(ctx, nonce)
	default:
		fmt.Fprintf(os.Stderr, "unknown operation: %s\n", os.Args[1])
		os.Exit(2)
	}

	if err != nil {
		logger.Fatal("operation failed",
			zap.String("operation", os.Args[1]),
			zap.String("kind", string(errors.KindOf(err))),
			zap.Error(err),
		)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("failed to encode response", zap.Error(err))
	}
	fmt.Println(string(out))
}

func argAt(i int) string {
	if len(os.Args) <= i {
		return ""
	}
	return os.Args[i]
}
