package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gsf/tournament-tracker/config"
	"github.com/gsf/tournament-tracker/db"
	"github.com/gsf/tournament-tracker/importer"
	"github.com/gsf/tournament-tracker/repositories"
	"github.com/spf13/cobra"
)

var (
	tournamentName string
	eventDir       string
)

var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "Import a TSH tournament export directory into the tracker database",
	Long: `Reads a tournament-director export directory (config.tsh plus one .t
roster file per division) and upserts the tournament, its divisions,
members, entries and seed ratings. Safe to re-run: a second import of
the same directory creates no duplicates.`,
	RunE:          runImport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&tournamentName, "tournament", "", "Tournament name (fallback when config.tsh has no event_name)")
	rootCmd.Flags().StringVar(&eventDir, "dir", "", "Path to the TSH event directory")
	rootCmd.MarkFlagRequired("tournament")
	rootCmd.MarkFlagRequired("dir")
}

func runImport(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbConn.Close()

	imp := importer.New(
		dbConn,
		repositories.NewPostgresTournamentRepository(dbConn),
		repositories.NewPostgresMemberRepository(dbConn),
		repositories.NewPostgresEntryRepository(dbConn),
		repositories.NewPostgresRatingRepository(dbConn),
		repositories.NewPostgresImportLogRepository(dbConn),
		logger,
	)

	summary, err := imp.Run(context.Background(), importer.Config{
		TournamentName: tournamentName,
		EventDir:       eventDir,
	})
	if err != nil {
		if errors.Is(err, importer.ErrConfigMissing) {
			return fmt.Errorf("%s does not look like a TSH event directory: %w", eventDir, err)
		}
		return err
	}

	fmt.Printf("Import complete: %d members processed across %d division(s) for %q (tournament id %d).\n",
		summary.PlayersProcessed, summary.Divisions, summary.TournamentName, summary.TournamentID)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
