package domain

import (
	"github.com/google/uuid"
)

// MatchRecord is one submitted match result. Records are immutable,
// corrections are delete and re-add.
type MatchRecord struct {
	ID          int
	UserID      uuid.UUID
	PlayerName  string
	WinLoss     string
	MapName     string
	Agent       string
	CurrentRank string
	ACS         int
	EconRating  float64
	Kills       int
	Deaths      int
	Assists     int
}

// KDRatio returns kills/deaths. A deathless match counts as its raw kill
// count, so a 0/0 record is 0.
func (m MatchRecord) KDRatio() float64 {
	if m.Deaths == 0 {
		return float64(m.Kills)
	}
	return float64(m.Kills) / float64(m.Deaths)
}

// AggregateStats are the derived per-player numbers behind the leaderboard.
// Averages are rounded to two decimal places.
type AggregateStats struct {
	AvgACS        float64
	AvgEconRating float64
	AvgKDRatio    float64
	TotalKills    int
	TotalDeaths   int
	TotalAssists  int
	MatchesPlayed int
}

// PlayerAggregate pairs a player with their aggregate stats. Slices of
// PlayerAggregate keep first-seen input order, which is what breaks
// leaderboard ties.
type PlayerAggregate struct {
	PlayerName string
	Stats      AggregateStats
}

// LeaderboardRow is a ranked leaderboard entry. Positions run 1..N with no
// gaps, ties share nothing.
type LeaderboardRow struct {
	Position   int
	PlayerName string
	Stats      AggregateStats
}
