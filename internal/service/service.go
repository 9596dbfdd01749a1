package service

import (
	"context"

	"github.com/debduthira/valorant-prs/auth/users"
	"github.com/debduthira/valorant-prs/internal/cache/mem"
	"github.com/debduthira/valorant-prs/internal/domain"
	"github.com/debduthira/valorant-prs/internal/normalize"
	"github.com/debduthira/valorant-prs/internal/storage"

	"github.com/sirupsen/logrus"
)

// StatsService owns the match record lifecycle and the leaderboard.
type StatsService struct {
	matchStorage storage.MatchStorage
	leaderboard  *mem.Cache
	log          *logrus.Entry
}

func New(l *logrus.Logger, matchStorage storage.MatchStorage) *StatsService {
	return &StatsService{
		matchStorage: matchStorage,
		leaderboard:  mem.New(),
		log: l.WithFields(map[string]interface{}{
			"from": "stats-service",
		}),
	}
}

func (s *StatsService) AddMatch(ctx context.Context, record domain.MatchRecord) error {
	record.PlayerName = normalize.Name(record.PlayerName)
	if err := s.matchStorage.Add(ctx, record); err != nil {
		return err
	}
	s.leaderboard.Invalidate()
	s.log.WithField("player", record.PlayerName).Debug("match added")
	return nil
}

func (s *StatsService) DeleteMatch(ctx context.Context, recordID int, actingUser users.User) error {
	if err := s.matchStorage.Delete(ctx, recordID, actingUser); err != nil {
		return err
	}
	s.leaderboard.Invalidate()
	return nil
}

func (s *StatsService) MatchesByPlayer(ctx context.Context, playerName string) ([]domain.MatchRecord, error) {
	return s.matchStorage.ListByPlayer(ctx, normalize.Name(playerName))
}

func (s *StatsService) AllMatches(ctx context.Context) ([]domain.MatchRecord, error) {
	return s.matchStorage.ListAll(ctx)
}

// MatchesFor returns the records the user sees on the match list: their
// own for players, everything for admins.
func (s *StatsService) MatchesFor(ctx context.Context, user users.User) ([]domain.MatchRecord, error) {
	if user.Role.CanModerate() {
		return s.matchStorage.ListAll(ctx)
	}
	return s.matchStorage.ListByPlayer(ctx, user.Name)
}

// Leaderboard aggregates every stored match and ranks players by mean
// ACS. The result is cached until the next match mutation.
func (s *StatsService) Leaderboard(ctx context.Context) ([]domain.LeaderboardRow, error) {
	if rows, ok := s.leaderboard.Get(); ok {
		return rows, nil
	}
	matches, err := s.matchStorage.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := Rank(Aggregate(matches))
	s.leaderboard.Update(rows)
	return rows, nil
}
