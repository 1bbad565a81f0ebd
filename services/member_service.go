package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gsf/tournament-tracker/models"
	"github.com/gsf/tournament-tracker/repositories"
	"golang.org/x/sync/errgroup"
)

// DefaultRatingSystem is used when a rankings request names no system.
const DefaultRatingSystem = models.WespaSystemCode

type MemberService interface {
	ListMembers(ctx context.Context) ([]models.MemberSummary, error)
	GetMemberByID(ctx context.Context, id int) (*models.MemberDetail, error)
	GetRankings(ctx context.Context, systemCode string) ([]models.RankingEntry, error)
	GetHistory(ctx context.Context, memberID int) ([]models.HistoryGame, error)
}

type memberService struct {
	memberRepo repositories.MemberRepository
}

func NewMemberService(memberRepo repositories.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) ListMembers(ctx context.Context) ([]models.MemberSummary, error) {
	members, err := s.memberRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// GetMemberByID loads the member row first so an unknown id is a clean
// not-found, then fetches rating history and tournament results
// concurrently.
func (s *memberService) GetMemberByID(ctx context.Context, id int) (*models.MemberDetail, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to fetch member %d: %w", id, err)
	}

	detail := &models.MemberDetail{Member: *member}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ratings, err := s.memberRepo.ListRatings(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch ratings for member %d: %w", id, err)
		}
		detail.Ratings = ratings
		return nil
	})
	g.Go(func() error {
		tournaments, err := s.memberRepo.ListTournamentResults(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch tournament results for member %d: %w", id, err)
		}
		detail.Tournaments = tournaments
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *memberService) GetRankings(ctx context.Context, systemCode string) ([]models.RankingEntry, error) {
	if systemCode == "" {
		systemCode = DefaultRatingSystem
	}
	rankings, err := s.memberRepo.ListRankings(ctx, systemCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rankings for system %q: %w", systemCode, err)
	}
	return rankings, nil
}

func (s *memberService) GetHistory(ctx context.Context, memberID int) ([]models.HistoryGame, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to fetch member %d: %w", memberID, err)
	}

	games, err := s.memberRepo.ListHistory(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history for member %d: %w", memberID, err)
	}
	return games, nil
}
