package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/ftpkit/listparse/internal/telemetry"
	"github.com/ftpkit/listparse/internal/transport"
)

func setupContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	// Setup graceful shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		log.Println("Interrupt signal detected, shutting down gracefully...")
		cancel()
		<-interrupt
		log.Fatal("Forcing shutdown")
	}()

	return ctx
}

func createTelemetryProvider(ctx context.Context) (*telemetry.Provider, error) {
	telemetryConfig := telemetry.Config{
		Enabled:  config.TelemetryEnabled,
		Endpoint: config.OTLPEndpoint,
	}
	return telemetry.NewProvider(ctx, telemetryConfig)
}

// openSource returns the listing byte stream named by args: an http(s) URL,
// a file path, or stdin for "-" or no argument.
func openSource(ctx context.Context, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	arg := args[0]
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return fetchListing(ctx, arg)
	}

	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to open listing file: %w", err)
	}
	return f, nil
}

func fetchListing(ctx context.Context, url string) (io.ReadCloser, error) {
	client := &http.Client{Transport: transport.WithRetryAfter(nil)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build listing request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch listing: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
