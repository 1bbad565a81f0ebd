package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gsf/tournament-tracker/models"
	"github.com/gsf/tournament-tracker/repositories"
)

// ErrConfigMissing is returned when the event directory has no
// config.tsh. The CLI treats it as fatal.
var ErrConfigMissing = errors.New("config.tsh not found in event directory")

// Config carries one import invocation. TournamentName is the fallback
// when config.tsh has no event_name.
type Config struct {
	TournamentName string
	EventDir       string
}

// Summary reports what one import did.
type Summary struct {
	TournamentID      int
	TournamentName    string
	TournamentCreated bool
	Divisions         int
	PlayersProcessed  int
}

// Importer ingests one TSH event directory into the schema. The whole
// run executes inside a single transaction: either every upsert lands
// or none do.
type Importer struct {
	db          *sql.DB
	tournaments repositories.TournamentRepository
	members     repositories.MemberRepository
	entries     repositories.EntryRepository
	ratings     repositories.RatingRepository
	importLogs  repositories.ImportLogRepository
	logger      *slog.Logger
	now         func() time.Time
}

func New(
	db *sql.DB,
	tournaments repositories.TournamentRepository,
	members repositories.MemberRepository,
	entries repositories.EntryRepository,
	ratings repositories.RatingRepository,
	importLogs repositories.ImportLogRepository,
	logger *slog.Logger,
) *Importer {
	return &Importer{
		db:          db,
		tournaments: tournaments,
		members:     members,
		entries:     entries,
		ratings:     ratings,
		importLogs:  importLogs,
		logger:      logger,
		now:         time.Now,
	}
}

// Run imports the event directory named by cfg in one transaction.
func (i *Importer) Run(ctx context.Context, cfg Config) (*Summary, error) {
	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	summary, err := i.run(ctx, tx, cfg)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}
	return summary, nil
}

func (i *Importer) run(ctx context.Context, exec repositories.SQLExecutor, cfg Config) (*Summary, error) {
	configPath := filepath.Join(cfg.EventDir, "config.tsh")
	f, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigMissing, cfg.EventDir)
		}
		return nil, fmt.Errorf("failed to open %s: %w", configPath, err)
	}
	tshConfig, err := ParseConfig(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	eventName := strings.Trim(tshConfig["event_name"], `"`)
	if eventName == "" {
		eventName = cfg.TournamentName
	}
	var maxRounds *int
	if v, convErr := strconv.Atoi(tshConfig["max_rounds"]); convErr == nil && v > 0 {
		maxRounds = &v
	}

	tournamentID, created, err := i.tournaments.UpsertByName(ctx, exec, eventName, maxRounds)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert tournament %q: %w", eventName, err)
	}
	if created {
		i.logger.Info("created tournament", slog.String("name", eventName), slog.Int("id", tournamentID))
	} else {
		i.logger.Info("found existing tournament", slog.String("name", eventName), slog.Int("id", tournamentID))
	}

	rosterFiles, err := findRosterFiles(cfg.EventDir)
	if err != nil {
		return nil, err
	}

	// The wespa system row may legitimately be absent (fresh schema
	// without seed data); ratings are then simply not recorded.
	wespa, err := i.ratings.GetSystemByCode(ctx, exec, models.WespaSystemCode)
	if err != nil && !errors.Is(err, repositories.ErrRatingSystemNotFound) {
		return nil, fmt.Errorf("failed to look up rating system: %w", err)
	}

	summary := &Summary{
		TournamentID:      tournamentID,
		TournamentName:    eventName,
		TournamentCreated: created,
	}
	importDate := i.now()

	for _, rosterPath := range rosterFiles {
		divName := strings.ToUpper(strings.TrimSuffix(filepath.Base(rosterPath), ".t"))
		divisionID, err := i.tournaments.UpsertDivision(ctx, exec, tournamentID, divName, maxRounds)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert division %q: %w", divName, err)
		}

		rf, err := os.Open(rosterPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open roster %s: %w", rosterPath, err)
		}
		players, err := ParseRoster(rf)
		rf.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse roster %s: %w", rosterPath, err)
		}
		i.logger.Info("importing division",
			slog.String("division", divName), slog.Int("players", len(players)))

		for n, p := range players {
			memberID, err := i.members.UpsertByName(ctx, exec, p.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to upsert member %q: %w", p.Name, err)
			}

			rating := p.Rating
			if err := i.entries.Upsert(ctx, exec, tournamentID, memberID, divisionID, n+1, &rating); err != nil {
				return nil, fmt.Errorf("failed to upsert entry for %q: %w", p.Name, err)
			}

			if wespa != nil && p.Rating > 0 {
				if err := i.ratings.Upsert(ctx, exec, memberID, wespa.ID, p.Rating, importDate, "import"); err != nil {
					return nil, fmt.Errorf("failed to upsert rating for %q: %w", p.Name, err)
				}
			}
			summary.PlayersProcessed++
		}
		summary.Divisions++
	}

	log := &models.ImportLog{
		TournamentID: tournamentID,
		SourceFile:   cfg.EventDir,
		RowsAffected: summary.PlayersProcessed,
		Notes:        fmt.Sprintf("Imported %d division(s)", summary.Divisions),
	}
	if err := i.importLogs.Create(ctx, exec, log); err != nil {
		return nil, fmt.Errorf("failed to record import log: %w", err)
	}

	return summary, nil
}

// findRosterFiles lists the *.t division files of an event directory,
// excluding the reserved config.t.
func findRosterFiles(eventDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(eventDir, "*.t"))
	if err != nil {
		return nil, fmt.Errorf("failed to list roster files in %s: %w", eventDir, err)
	}
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if filepath.Base(m) == "config.t" {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}
