package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gsf/tournament-tracker/models"
	"github.com/gsf/tournament-tracker/repositories"
	"golang.org/x/sync/errgroup"
)

type TournamentService interface {
	ListTournaments(ctx context.Context) ([]models.TournamentSummary, error)
	GetTournamentByID(ctx context.Context, id int) (*models.TournamentDetail, error)
	GetResults(ctx context.Context, tournamentID int) ([]models.ResultRow, error)
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
}

func NewTournamentService(tournamentRepo repositories.TournamentRepository) TournamentService {
	return &tournamentService{tournamentRepo: tournamentRepo}
}

func (s *tournamentService) ListTournaments(ctx context.Context) ([]models.TournamentSummary, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

// GetTournamentByID loads the tournament row first so an unknown id is
// a clean not-found, then fetches divisions and final standings
// concurrently.
func (s *tournamentService) GetTournamentByID(ctx context.Context, id int) (*models.TournamentDetail, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to fetch tournament %d: %w", id, err)
	}

	detail := &models.TournamentDetail{Tournament: *tournament}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		divisions, err := s.tournamentRepo.ListDivisions(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch divisions for tournament %d: %w", id, err)
		}
		detail.Divisions = divisions
		return nil
	})
	g.Go(func() error {
		standings, err := s.tournamentRepo.ListFinalStandings(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch standings for tournament %d: %w", id, err)
		}
		detail.Standings = standings
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *tournamentService) GetResults(ctx context.Context, tournamentID int) ([]models.ResultRow, error) {
	results, err := s.tournamentRepo.ListResults(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results for tournament %d: %w", tournamentID, err)
	}
	return results, nil
}
