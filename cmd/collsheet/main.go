// Package main provides the CLI entry point for collsheet.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/collsheet-go/internal/config"
	"github.com/ukaji3/collsheet-go/pkg/collsheet"
	"github.com/ukaji3/collsheet-go/pkg/collsheet/output"
	"github.com/ukaji3/collsheet-go/pkg/collsheet/parser"
	"github.com/ukaji3/collsheet-go/pkg/collsheet/source"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	// jobs flags
	outputPath    string
	pretty        bool
	format        string
	xlsxPath      string
	spreadsheetID string
	sheetName     string
	filterFlag    string

	// check flags
	collectionID  string
	collectionIDs string

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "collsheet",
		Short: "Read active collection jobs from the collection-level sheet",
		Long: `collsheet reads the collection-level sheet (Google Sheets or a local .xlsx),
locates its header row and lists the active collections as jobs.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "List active collection jobs",
		Long: `Lists active collection jobs from the sheet. The collection id filter comes
from --filter or COLLECTION_ID_FILTER; a filter with an unparsable id is ignored.`,
		Args: cobra.NoArgs,
		RunE: runJobs,
	}
	jobsCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	jobsCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	jobsCmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml")
	jobsCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Read a local .xlsx workbook instead of Google Sheets")
	jobsCmd.Flags().StringVar(&spreadsheetID, "spreadsheet-id", "", "Spreadsheet key (default: $SPREADSHEET_ID)")
	jobsCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: $COLLECTION_SHEET_NAME or \"At Collection Level\")")
	jobsCmd.Flags().StringVar(&filterFlag, "filter", "", "Comma-separated collection ids to keep (default: $COLLECTION_ID_FILTER)")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Run tracker checks for one or more collections",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
	checkCmd.Flags().StringVar(&collectionID, "collection-id", "", "Single collection ID to process")
	checkCmd.Flags().StringVar(&collectionIDs, "collection-ids", "", "Comma-separated list of collection IDs")
	checkCmd.MarkFlagsMutuallyExclusive("collection-id", "collection-ids")
	checkCmd.MarkFlagsOneRequired("collection-id", "collection-ids")

	validateCmd := &cobra.Command{
		Use:   "validate [ids...]",
		Short: "Validate a collection id list and print one id per line",
		Args:  cobra.ArbitraryArgs,
		RunE:  runValidate,
	}

	rootCmd.AddCommand(jobsCmd, checkCmd, validateCmd)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func runJobs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rawFilter := cfg.CollectionIDFilter
	if cmd.Flags().Changed("filter") {
		rawFilter = &filterFlag
	}
	idFilter, err := parser.LoadCollectionIDFilter(rawFilter, logger)
	if err != nil {
		return fmt.Errorf("collection id filter: %w", err)
	}

	reader, err := gridReader(ctx)
	if err != nil {
		return err
	}

	jobs, err := collsheet.FetchCollectionJobs(ctx, reader, collsheet.Options{
		IDFilter: idFilter,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	data, err := output.Render(jobs, output.Format(format), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func gridReader(ctx context.Context) (collsheet.GridReader, error) {
	sheet := sheetName
	if sheet == "" {
		sheet = cfg.SheetName
	}

	if xlsxPath != "" {
		if _, err := os.Stat(xlsxPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", xlsxPath)
		}
		return source.Workbook{Path: xlsxPath, Sheet: sheet}, nil
	}

	id := spreadsheetID
	if id == "" {
		id = cfg.SpreadsheetID
	}
	if id == "" {
		return nil, fmt.Errorf("%w: set --spreadsheet-id or %s", source.ErrMissingSpreadsheetID, config.EnvSpreadsheetID)
	}

	client, err := source.NewSheetsClient(ctx, cfg.CredentialsJSON, id, sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.EnvCredentialsJSON, err)
	}
	return client, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	if collectionID != "" {
		logger.Debug("processing single collection", zap.String("collection_id", collectionID))
		checkCollection(cmd, collectionID)
		return nil
	}

	ids, err := parser.ValidateCollectionIDs(collectionIDs)
	if err != nil {
		return fmt.Errorf("--collection-ids: %w", err)
	}
	logger.Debug("processing multiple collections", zap.Strings("collection_ids", ids))
	for _, id := range ids {
		checkCollection(cmd, id)
	}
	return nil
}

func checkCollection(cmd *cobra.Command, id string) {
	logger.Info("processing collection", zap.String("collection_id", id))
	fmt.Fprintf(cmd.OutOrStdout(), "Processing collection: %s\n", id)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ids, err := parser.ValidateCollectionIDList(args)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
