package repositories

import (
	"context"
	"time"

	"github.com/gsf/tournament-tracker/models"
)

// Mock implementations of the repository interfaces for testing.
// Behavior is injected per test through the corresponding Func fields;
// calls are recorded so tests can assert on upsert order and arguments.

type MemberRepositoryMock struct {
	ListActiveFunc            func(ctx context.Context) ([]models.MemberSummary, error)
	GetByIDFunc               func(ctx context.Context, id int) (*models.Member, error)
	ListRatingsFunc           func(ctx context.Context, memberID int) ([]models.RatingHistoryEntry, error)
	ListTournamentResultsFunc func(ctx context.Context, memberID int) ([]models.MemberTournamentResult, error)
	ListRankingsFunc          func(ctx context.Context, systemCode string) ([]models.RankingEntry, error)
	ListHistoryFunc           func(ctx context.Context, memberID int) ([]models.HistoryGame, error)
	UpsertByNameFunc          func(ctx context.Context, exec SQLExecutor, name string) (int, error)

	ListRankingsCalls []string
	UpsertByNameCalls []string
}

func (m *MemberRepositoryMock) ListActive(ctx context.Context) ([]models.MemberSummary, error) {
	return m.ListActiveFunc(ctx)
}

func (m *MemberRepositoryMock) GetByID(ctx context.Context, id int) (*models.Member, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MemberRepositoryMock) ListRatings(ctx context.Context, memberID int) ([]models.RatingHistoryEntry, error) {
	return m.ListRatingsFunc(ctx, memberID)
}

func (m *MemberRepositoryMock) ListTournamentResults(ctx context.Context, memberID int) ([]models.MemberTournamentResult, error) {
	return m.ListTournamentResultsFunc(ctx, memberID)
}

func (m *MemberRepositoryMock) ListRankings(ctx context.Context, systemCode string) ([]models.RankingEntry, error) {
	m.ListRankingsCalls = append(m.ListRankingsCalls, systemCode)
	return m.ListRankingsFunc(ctx, systemCode)
}

func (m *MemberRepositoryMock) ListHistory(ctx context.Context, memberID int) ([]models.HistoryGame, error) {
	return m.ListHistoryFunc(ctx, memberID)
}

func (m *MemberRepositoryMock) UpsertByName(ctx context.Context, exec SQLExecutor, name string) (int, error) {
	m.UpsertByNameCalls = append(m.UpsertByNameCalls, name)
	return m.UpsertByNameFunc(ctx, exec, name)
}

type TournamentRepositoryMock struct {
	ListFunc               func(ctx context.Context) ([]models.TournamentSummary, error)
	GetByIDFunc            func(ctx context.Context, id int) (*models.Tournament, error)
	ListDivisionsFunc      func(ctx context.Context, tournamentID int) ([]models.Division, error)
	ListFinalStandingsFunc func(ctx context.Context, tournamentID int) ([]models.StandingRow, error)
	ListResultsFunc        func(ctx context.Context, tournamentID int) ([]models.ResultRow, error)
	UpsertByNameFunc       func(ctx context.Context, exec SQLExecutor, name string, maxRounds *int) (int, bool, error)
	UpsertDivisionFunc     func(ctx context.Context, exec SQLExecutor, tournamentID int, name string, maxRounds *int) (int, error)

	UpsertByNameCalls   []string
	UpsertDivisionCalls []string
}

func (m *TournamentRepositoryMock) List(ctx context.Context) ([]models.TournamentSummary, error) {
	return m.ListFunc(ctx)
}

func (m *TournamentRepositoryMock) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *TournamentRepositoryMock) ListDivisions(ctx context.Context, tournamentID int) ([]models.Division, error) {
	return m.ListDivisionsFunc(ctx, tournamentID)
}

func (m *TournamentRepositoryMock) ListFinalStandings(ctx context.Context, tournamentID int) ([]models.StandingRow, error) {
	return m.ListFinalStandingsFunc(ctx, tournamentID)
}

func (m *TournamentRepositoryMock) ListResults(ctx context.Context, tournamentID int) ([]models.ResultRow, error) {
	return m.ListResultsFunc(ctx, tournamentID)
}

func (m *TournamentRepositoryMock) UpsertByName(ctx context.Context, exec SQLExecutor, name string, maxRounds *int) (int, bool, error) {
	m.UpsertByNameCalls = append(m.UpsertByNameCalls, name)
	return m.UpsertByNameFunc(ctx, exec, name, maxRounds)
}

func (m *TournamentRepositoryMock) UpsertDivision(ctx context.Context, exec SQLExecutor, tournamentID int, name string, maxRounds *int) (int, error) {
	m.UpsertDivisionCalls = append(m.UpsertDivisionCalls, name)
	return m.UpsertDivisionFunc(ctx, exec, tournamentID, name, maxRounds)
}

type EntryUpsertCall struct {
	TournamentID int
	MemberID     int
	DivisionID   int
	PlayerNumber int
	SeedRating   *int
}

type EntryRepositoryMock struct {
	UpsertFunc func(ctx context.Context, exec SQLExecutor, tournamentID, memberID, divisionID, playerNumber int, seedRating *int) error

	UpsertCalls []EntryUpsertCall
}

func (m *EntryRepositoryMock) Upsert(ctx context.Context, exec SQLExecutor, tournamentID, memberID, divisionID, playerNumber int, seedRating *int) error {
	m.UpsertCalls = append(m.UpsertCalls, EntryUpsertCall{
		TournamentID: tournamentID,
		MemberID:     memberID,
		DivisionID:   divisionID,
		PlayerNumber: playerNumber,
		SeedRating:   seedRating,
	})
	return m.UpsertFunc(ctx, exec, tournamentID, memberID, divisionID, playerNumber, seedRating)
}

type RatingUpsertCall struct {
	MemberID      int
	SystemID      int
	Rating        int
	EffectiveDate time.Time
	Source        string
}

type RatingRepositoryMock struct {
	GetSystemByCodeFunc func(ctx context.Context, exec SQLExecutor, code string) (*models.RatingSystem, error)
	UpsertFunc          func(ctx context.Context, exec SQLExecutor, memberID, systemID, rating int, effectiveDate time.Time, source string) error

	UpsertCalls []RatingUpsertCall
}

func (m *RatingRepositoryMock) GetSystemByCode(ctx context.Context, exec SQLExecutor, code string) (*models.RatingSystem, error) {
	return m.GetSystemByCodeFunc(ctx, exec, code)
}

func (m *RatingRepositoryMock) Upsert(ctx context.Context, exec SQLExecutor, memberID, systemID, rating int, effectiveDate time.Time, source string) error {
	m.UpsertCalls = append(m.UpsertCalls, RatingUpsertCall{
		MemberID:      memberID,
		SystemID:      systemID,
		Rating:        rating,
		EffectiveDate: effectiveDate,
		Source:        source,
	})
	return m.UpsertFunc(ctx, exec, memberID, systemID, rating, effectiveDate, source)
}

type ImportLogRepositoryMock struct {
	CreateFunc func(ctx context.Context, exec SQLExecutor, log *models.ImportLog) error

	CreateCalls []models.ImportLog
}

func (m *ImportLogRepositoryMock) Create(ctx context.Context, exec SQLExecutor, log *models.ImportLog) error {
	m.CreateCalls = append(m.CreateCalls, *log)
	return m.CreateFunc(ctx, exec, log)
}
