package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ftpkit/listparse/internal/dialect"
	"github.com/ftpkit/listparse/internal/listing"
	"github.com/ftpkit/listparse/internal/telemetry"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|url|-]",
	Short: "Parse a directory listing from a file, URL, or stdin",
	Long: `Parse ingests one directory listing and prints the structured records.
The listing is read from the given file, fetched from an http(s) URL, or
read from stdin when the argument is "-" or omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&config.Dialect, "dialect", "unix", "listing dialect key (see 'listparse dialects')")
	parseCmd.Flags().IntVar(&config.PageSize, "page", 0, "records per page, 0 prints everything at once")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := setupContext()

	provider, err := createTelemetryProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.Printf("Failed to shut down telemetry provider: %v", err)
		}
	}()

	operationID := telemetry.NewOperationID()
	ctx, span := provider.Tracer().Start(ctx, "parse-listing", trace.WithAttributes(
		attribute.String("listing.operation_id", operationID),
		attribute.String("listing.dialect", config.Dialect),
	))
	defer span.End()

	parser, err := dialect.New(config.Dialect)
	if err != nil {
		return fmt.Errorf("failed to resolve dialect: %w", err)
	}
	engine, err := listing.NewEngine(parser)
	if err != nil {
		return err
	}

	src, err := openSource(ctx, args)
	if err != nil {
		return err
	}

	log.Printf("Ingesting listing (operation %s)", operationID)
	if err := engine.Ingest(ctx, src); err != nil {
		return fmt.Errorf("failed to ingest listing: %w", err)
	}
	span.SetAttributes(attribute.Int("listing.entries", engine.Len()))
	log.Printf("Buffered %d raw entries", engine.Len())

	if config.PageSize <= 0 {
		printRecords(engine.All())
		return nil
	}

	page := 0
	for engine.HasNext() {
		page++
		fmt.Printf("-- page %d --\n", page)
		printRecords(engine.Next(config.PageSize))
	}
	return nil
}

func printRecords(files []*dialect.File) {
	for _, file := range files {
		if file == nil {
			// Entries the dialect could not attribute to a file are kept as
			// sentinel records rather than dropped
			fmt.Println("(unparsed entry)")
			continue
		}
		fmt.Println(file)
	}
}
