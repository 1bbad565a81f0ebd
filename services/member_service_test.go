package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gsf/tournament-tracker/models"
	"github.com/gsf/tournament-tracker/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMemberByID(t *testing.T) {
	joined := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &repositories.MemberRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Member, error) {
			require.Equal(t, 3, id)
			return &models.Member{ID: 3, Name: "Jallow, Fatou", Status: models.MemberStatusActive, JoinedDate: &joined}, nil
		},
		ListRatingsFunc: func(ctx context.Context, memberID int) ([]models.RatingHistoryEntry, error) {
			return []models.RatingHistoryEntry{
				{Rating: 1620, SystemCode: "wespa", Source: "import"},
				{Rating: 1580, SystemCode: "wespa", Source: "import"},
			}, nil
		},
		ListTournamentResultsFunc: func(ctx context.Context, memberID int) ([]models.MemberTournamentResult, error) {
			wins := 5
			return []models.MemberTournamentResult{
				{TournamentID: 1, Name: "GSF Nationals 2025", Wins: &wins},
			}, nil
		},
	}

	svc := NewMemberService(repo)
	detail, err := svc.GetMemberByID(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "Jallow, Fatou", detail.Name)
	assert.Len(t, detail.Ratings, 2)
	assert.Len(t, detail.Tournaments, 1)
}

func TestGetMemberByIDNotFound(t *testing.T) {
	repo := &repositories.MemberRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Member, error) {
			return nil, repositories.ErrMemberNotFound
		},
	}

	svc := NewMemberService(repo)
	_, err := svc.GetMemberByID(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestGetMemberByIDChildQueryFailure(t *testing.T) {
	repo := &repositories.MemberRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Member, error) {
			return &models.Member{ID: 3, Name: "Jallow, Fatou"}, nil
		},
		ListRatingsFunc: func(ctx context.Context, memberID int) ([]models.RatingHistoryEntry, error) {
			return nil, errors.New("connection reset")
		},
		ListTournamentResultsFunc: func(ctx context.Context, memberID int) ([]models.MemberTournamentResult, error) {
			return []models.MemberTournamentResult{}, nil
		},
	}

	svc := NewMemberService(repo)
	_, err := svc.GetMemberByID(context.Background(), 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMemberNotFound)
}

func TestGetRankingsDefaultsToWespa(t *testing.T) {
	repo := &repositories.MemberRepositoryMock{
		ListRankingsFunc: func(ctx context.Context, systemCode string) ([]models.RankingEntry, error) {
			return []models.RankingEntry{}, nil
		},
	}

	svc := NewMemberService(repo)

	_, err := svc.GetRankings(context.Background(), "")
	require.NoError(t, err)
	_, err = svc.GetRankings(context.Background(), "national")
	require.NoError(t, err)

	assert.Equal(t, []string{"wespa", "national"}, repo.ListRankingsCalls)
}

func TestGetRankingsUnknownSystemIsEmptyNotError(t *testing.T) {
	repo := &repositories.MemberRepositoryMock{
		ListRankingsFunc: func(ctx context.Context, systemCode string) ([]models.RankingEntry, error) {
			return []models.RankingEntry{}, nil
		},
	}

	svc := NewMemberService(repo)
	rankings, err := svc.GetRankings(context.Background(), "no-such-system")
	require.NoError(t, err)
	assert.Empty(t, rankings)
}

func TestGetHistoryChecksMemberExists(t *testing.T) {
	repo := &repositories.MemberRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Member, error) {
			return nil, repositories.ErrMemberNotFound
		},
	}

	svc := NewMemberService(repo)
	_, err := svc.GetHistory(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestGetHistoryReturnsCompletedGames(t *testing.T) {
	repo := &repositories.MemberRepositoryMock{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Member, error) {
			return &models.Member{ID: 3, Name: "Jallow, Fatou"}, nil
		},
		ListHistoryFunc: func(ctx context.Context, memberID int) ([]models.HistoryGame, error) {
			opp := "Smith, John"
			return []models.HistoryGame{
				// member was player2: 420-380 against them
				{Round: 4, Score1: 420, Score2: 380, Opponent: &opp, Won: false},
			}, nil
		},
	}

	svc := NewMemberService(repo)
	games, err := svc.GetHistory(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.False(t, games[0].Won)
}
