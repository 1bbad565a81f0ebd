package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gsf/tournament-tracker/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type TournamentRepository interface {
	List(ctx context.Context) ([]models.TournamentSummary, error)
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	ListDivisions(ctx context.Context, tournamentID int) ([]models.Division, error)
	ListFinalStandings(ctx context.Context, tournamentID int) ([]models.StandingRow, error)
	ListResults(ctx context.Context, tournamentID int) ([]models.ResultRow, error)
	UpsertByName(ctx context.Context, exec SQLExecutor, name string, maxRounds *int) (id int, created bool, err error)
	UpsertDivision(ctx context.Context, exec SQLExecutor, tournamentID int, name string, maxRounds *int) (int, error)
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTournamentRepository) List(ctx context.Context) ([]models.TournamentSummary, error) {
	query := `
		SELECT t.id, t.name, t.max_rounds, t.status, t.date_start, t.location,
		       COUNT(DISTINCT te.member_id) AS player_count
		FROM tournaments t
		LEFT JOIN tournament_entries te ON te.tournament_id = t.id
		GROUP BY t.id
		ORDER BY t.date_start DESC NULLS LAST`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.TournamentSummary, 0)
	for rows.Next() {
		var t models.TournamentSummary
		if scanErr := rows.Scan(
			&t.ID, &t.Name, &t.MaxRounds, &t.Status, &t.DateStart, &t.Location,
			&t.PlayerCount,
		); scanErr != nil {
			return nil, scanErr
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `
		SELECT id, name, max_rounds, status, date_start, location
		FROM tournaments
		WHERE id = $1`

	t := &models.Tournament{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.MaxRounds, &t.Status, &t.DateStart, &t.Location,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTournamentRepository) ListDivisions(ctx context.Context, tournamentID int) ([]models.Division, error) {
	query := `
		SELECT id, tournament_id, name, max_rounds
		FROM divisions
		WHERE tournament_id = $1
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	divisions := make([]models.Division, 0)
	for rows.Next() {
		var d models.Division
		if scanErr := rows.Scan(&d.ID, &d.TournamentID, &d.Name, &d.MaxRounds); scanErr != nil {
			return nil, scanErr
		}
		divisions = append(divisions, d)
	}
	return divisions, rows.Err()
}

// ListFinalStandings restricts each division to its maximum recorded
// round, so partially imported divisions still show their latest state.
func (r *postgresTournamentRepository) ListFinalStandings(ctx context.Context, tournamentID int) ([]models.StandingRow, error) {
	query := `
		SELECT m.name, s.wins, s.losses, s.spread, s.rating, s.rank,
		       d.name AS division, s.round
		FROM standings s
		JOIN members m ON m.id = s.member_id
		JOIN divisions d ON d.id = s.division_id
		WHERE d.tournament_id = $1
		  AND s.round = (SELECT MAX(s2.round) FROM standings s2
		                 WHERE s2.division_id = s.division_id)
		ORDER BY d.name, s.rank`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	standings := make([]models.StandingRow, 0)
	for rows.Next() {
		var s models.StandingRow
		if scanErr := rows.Scan(
			&s.Name, &s.Wins, &s.Losses, &s.Spread, &s.Rating, &s.Rank,
			&s.Division, &s.Round,
		); scanErr != nil {
			return nil, scanErr
		}
		standings = append(standings, s)
	}
	return standings, rows.Err()
}

func (r *postgresTournamentRepository) ListResults(ctx context.Context, tournamentID int) ([]models.ResultRow, error) {
	query := `
		SELECT p.round, p.board, p.player1_id, p.player2_id,
		       m1.name AS player1_name, m2.name AS player2_name,
		       g.score1, g.score2, d.name AS division
		FROM pairings p
		JOIN divisions d ON d.id = p.division_id
		JOIN members m1 ON m1.id = p.player1_id
		LEFT JOIN members m2 ON m2.id = p.player2_id
		LEFT JOIN games g ON g.pairing_id = p.id
		WHERE d.tournament_id = $1
		ORDER BY d.name, p.round, p.board`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.ResultRow, 0)
	for rows.Next() {
		var res models.ResultRow
		if scanErr := rows.Scan(
			&res.Round, &res.Board, &res.Player1ID, &res.Player2ID,
			&res.Player1Name, &res.Player2Name,
			&res.Score1, &res.Score2, &res.Division,
		); scanErr != nil {
			return nil, scanErr
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// UpsertByName inserts a completed tournament under its unique name, or
// reuses the existing row. The returned created flag lets the importer
// report which case it hit.
func (r *postgresTournamentRepository) UpsertByName(ctx context.Context, exec SQLExecutor, name string, maxRounds *int) (int, bool, error) {
	executor := r.getExecutor(exec)

	var id int
	err := executor.QueryRowContext(ctx, `
		INSERT INTO tournaments (name, max_rounds, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
		RETURNING id`,
		name, maxRounds, models.TournamentStatusCompleted,
	).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, err
	}

	err = executor.QueryRowContext(ctx, `SELECT id FROM tournaments WHERE name = $1`, name).Scan(&id)
	if err != nil {
		return 0, false, err
	}
	return id, false, nil
}

func (r *postgresTournamentRepository) UpsertDivision(ctx context.Context, exec SQLExecutor, tournamentID int, name string, maxRounds *int) (int, error) {
	executor := r.getExecutor(exec)

	var id int
	err := executor.QueryRowContext(ctx, `
		INSERT INTO divisions (tournament_id, name, max_rounds)
		VALUES ($1, $2, $3)
		ON CONFLICT (tournament_id, name) DO NOTHING
		RETURNING id`,
		tournamentID, name, maxRounds,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = executor.QueryRowContext(ctx,
		`SELECT id FROM divisions WHERE tournament_id = $1 AND name = $2`,
		tournamentID, name,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
