package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gsf/tournament-tracker/models"
)

var ErrMemberNotFound = errors.New("member not found")

type MemberRepository interface {
	ListActive(ctx context.Context) ([]models.MemberSummary, error)
	GetByID(ctx context.Context, id int) (*models.Member, error)
	ListRatings(ctx context.Context, memberID int) ([]models.RatingHistoryEntry, error)
	ListTournamentResults(ctx context.Context, memberID int) ([]models.MemberTournamentResult, error)
	ListRankings(ctx context.Context, systemCode string) ([]models.RankingEntry, error)
	ListHistory(ctx context.Context, memberID int) ([]models.HistoryGame, error)
	UpsertByName(ctx context.Context, exec SQLExecutor, name string) (int, error)
}

type postgresMemberRepository struct {
	db *sql.DB
}

func NewPostgresMemberRepository(db *sql.DB) MemberRepository {
	return &postgresMemberRepository{db: db}
}

func (r *postgresMemberRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

// ListActive returns every non-inactive member with their most recent
// rating across all systems, highest rated first, unrated members last.
func (r *postgresMemberRepository) ListActive(ctx context.Context) ([]models.MemberSummary, error) {
	query := `
		SELECT m.id, m.name, m.region, m.status, m.photo_url, m.joined_date,
		       mr.rating, rs.code
		FROM members m
		LEFT JOIN LATERAL (
			SELECT mr2.rating, mr2.system_id
			FROM member_ratings mr2
			WHERE mr2.member_id = m.id
			ORDER BY mr2.effective_date DESC
			LIMIT 1
		) mr ON true
		LEFT JOIN rating_systems rs ON rs.id = mr.system_id
		WHERE m.status != $1
		ORDER BY mr.rating DESC NULLS LAST`

	rows, err := r.db.QueryContext(ctx, query, models.MemberStatusInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]models.MemberSummary, 0)
	for rows.Next() {
		var m models.MemberSummary
		if scanErr := rows.Scan(
			&m.ID, &m.Name, &m.Region, &m.Status, &m.PhotoURL, &m.JoinedDate,
			&m.Rating, &m.RatingSystem,
		); scanErr != nil {
			return nil, scanErr
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *postgresMemberRepository) GetByID(ctx context.Context, id int) (*models.Member, error) {
	query := `
		SELECT id, name, region, status, photo_url, joined_date
		FROM members
		WHERE id = $1`

	m := &models.Member{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Region, &m.Status, &m.PhotoURL, &m.JoinedDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *postgresMemberRepository) ListRatings(ctx context.Context, memberID int) ([]models.RatingHistoryEntry, error) {
	query := `
		SELECT mr.rating, mr.effective_date, mr.source, rs.code, rs.name
		FROM member_ratings mr
		JOIN rating_systems rs ON rs.id = mr.system_id
		WHERE mr.member_id = $1
		ORDER BY mr.effective_date DESC`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]models.RatingHistoryEntry, 0)
	for rows.Next() {
		var e models.RatingHistoryEntry
		if scanErr := rows.Scan(
			&e.Rating, &e.EffectiveDate, &e.Source, &e.SystemCode, &e.SystemName,
		); scanErr != nil {
			return nil, scanErr
		}
		ratings = append(ratings, e)
	}
	return ratings, rows.Err()
}

// ListTournamentResults joins each of the member's entries to their
// standing at the division's last recorded round. Standing fields stay
// nil for divisions without standings.
func (r *postgresMemberRepository) ListTournamentResults(ctx context.Context, memberID int) ([]models.MemberTournamentResult, error) {
	query := `
		SELECT t.id, t.name, t.date_start, t.location,
		       s.wins, s.losses, s.spread, s.rank
		FROM tournament_entries te
		JOIN tournaments t ON t.id = te.tournament_id
		LEFT JOIN standings s ON s.member_id = te.member_id
			AND s.division_id = te.division_id
			AND s.round = (
				SELECT MAX(s2.round) FROM standings s2
				WHERE s2.division_id = te.division_id
			)
		WHERE te.member_id = $1
		ORDER BY t.date_start DESC NULLS LAST`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.MemberTournamentResult, 0)
	for rows.Next() {
		var res models.MemberTournamentResult
		if scanErr := rows.Scan(
			&res.TournamentID, &res.Name, &res.DateStart, &res.Location,
			&res.Wins, &res.Losses, &res.Spread, &res.Rank,
		); scanErr != nil {
			return nil, scanErr
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// ListRankings returns active members holding a rating in the given
// system, keeping only each member's latest row for that system. An
// unknown system code yields an empty slice, not an error.
func (r *postgresMemberRepository) ListRankings(ctx context.Context, systemCode string) ([]models.RankingEntry, error) {
	query := `
		SELECT m.id, m.name, m.region, m.photo_url,
		       mr.rating, mr.effective_date,
		       rs.code,
		       (SELECT COUNT(*) FROM tournament_entries te WHERE te.member_id = m.id) AS tournaments_played
		FROM members m
		JOIN member_ratings mr ON mr.member_id = m.id
		JOIN rating_systems rs ON rs.id = mr.system_id AND rs.code = $1
		WHERE m.status != $2
		  AND mr.effective_date = (
			SELECT MAX(mr2.effective_date)
			FROM member_ratings mr2
			WHERE mr2.member_id = m.id AND mr2.system_id = mr.system_id
		  )
		ORDER BY mr.rating DESC`

	rows, err := r.db.QueryContext(ctx, query, systemCode, models.MemberStatusInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rankings := make([]models.RankingEntry, 0)
	for rows.Next() {
		var e models.RankingEntry
		if scanErr := rows.Scan(
			&e.MemberID, &e.Name, &e.Region, &e.PhotoURL,
			&e.Rating, &e.EffectiveDate, &e.System, &e.TournamentsPlayed,
		); scanErr != nil {
			return nil, scanErr
		}
		rankings = append(rankings, e)
	}
	return rankings, rows.Err()
}

// ListHistory returns the member's completed games only (a pairing
// counts once a game row with scores exists). Won is computed in SQL
// from whichever seat the member held.
func (r *postgresMemberRepository) ListHistory(ctx context.Context, memberID int) ([]models.HistoryGame, error) {
	query := `
		SELECT p.round, p.board, g.score1, g.score2,
		       opp.name AS opponent, t.name AS tournament,
		       t.date_start, d.name AS division,
		       CASE WHEN p.player1_id = $1 THEN g.score1 > g.score2
		            ELSE g.score2 > g.score1 END AS won
		FROM pairings p
		JOIN divisions d ON d.id = p.division_id
		JOIN tournaments t ON t.id = d.tournament_id
		JOIN games g ON g.pairing_id = p.id
		LEFT JOIN members opp ON opp.id = CASE
			WHEN p.player1_id = $1 THEN p.player2_id
			ELSE p.player1_id END
		WHERE (p.player1_id = $1 OR p.player2_id = $1)
		ORDER BY t.date_start DESC, p.round`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.HistoryGame, 0)
	for rows.Next() {
		var g models.HistoryGame
		if scanErr := rows.Scan(
			&g.Round, &g.Board, &g.Score1, &g.Score2,
			&g.Opponent, &g.Tournament, &g.DateStart, &g.Division, &g.Won,
		); scanErr != nil {
			return nil, scanErr
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// UpsertByName inserts a member, or returns the existing id when a
// member with that exact name is already present. Identity is the bare
// name string: two different people sharing a name collide. Kept for
// parity with the TSH import format, which carries no other identifier.
func (r *postgresMemberRepository) UpsertByName(ctx context.Context, exec SQLExecutor, name string) (int, error) {
	executor := r.getExecutor(exec)

	var id int
	err := executor.QueryRowContext(ctx,
		`INSERT INTO members (name) VALUES ($1) ON CONFLICT (name) DO NOTHING RETURNING id`,
		name,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = executor.QueryRowContext(ctx, `SELECT id FROM members WHERE name = $1`, name).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
