package services

import (
	"context"

	"github.com/gsf/tournament-tracker/models"
)

// Mock implementations of the service interfaces for handler tests.

type MemberServiceMock struct {
	ListMembersFunc   func(ctx context.Context) ([]models.MemberSummary, error)
	GetMemberByIDFunc func(ctx context.Context, id int) (*models.MemberDetail, error)
	GetRankingsFunc   func(ctx context.Context, systemCode string) ([]models.RankingEntry, error)
	GetHistoryFunc    func(ctx context.Context, memberID int) ([]models.HistoryGame, error)

	GetRankingsCalls []string
}

func (m *MemberServiceMock) ListMembers(ctx context.Context) ([]models.MemberSummary, error) {
	return m.ListMembersFunc(ctx)
}

func (m *MemberServiceMock) GetMemberByID(ctx context.Context, id int) (*models.MemberDetail, error) {
	return m.GetMemberByIDFunc(ctx, id)
}

func (m *MemberServiceMock) GetRankings(ctx context.Context, systemCode string) ([]models.RankingEntry, error) {
	m.GetRankingsCalls = append(m.GetRankingsCalls, systemCode)
	return m.GetRankingsFunc(ctx, systemCode)
}

func (m *MemberServiceMock) GetHistory(ctx context.Context, memberID int) ([]models.HistoryGame, error) {
	return m.GetHistoryFunc(ctx, memberID)
}

type TournamentServiceMock struct {
	ListTournamentsFunc   func(ctx context.Context) ([]models.TournamentSummary, error)
	GetTournamentByIDFunc func(ctx context.Context, id int) (*models.TournamentDetail, error)
	GetResultsFunc        func(ctx context.Context, tournamentID int) ([]models.ResultRow, error)
}

func (m *TournamentServiceMock) ListTournaments(ctx context.Context) ([]models.TournamentSummary, error) {
	return m.ListTournamentsFunc(ctx)
}

func (m *TournamentServiceMock) GetTournamentByID(ctx context.Context, id int) (*models.TournamentDetail, error) {
	return m.GetTournamentByIDFunc(ctx, id)
}

func (m *TournamentServiceMock) GetResults(ctx context.Context, tournamentID int) ([]models.ResultRow, error) {
	return m.GetResultsFunc(ctx, tournamentID)
}
