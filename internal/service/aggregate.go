package service

import (
	"math"
	"sort"

	"github.com/debduthira/valorant-prs/internal/domain"
)

type accumulator struct {
	acsSum  float64
	econSum float64
	kdSum   float64
	kills   int
	deaths  int
	assists int
	played  int
}

// Aggregate groups records by player name and computes the derived stats
// for each group. The result keeps first-seen input order, which Rank
// relies on for tie breaking. Empty input yields an empty result.
func Aggregate(records []domain.MatchRecord) []domain.PlayerAggregate {
	var order []string
	groups := make(map[string]*accumulator)
	for _, r := range records {
		acc, ok := groups[r.PlayerName]
		if !ok {
			acc = &accumulator{}
			groups[r.PlayerName] = acc
			order = append(order, r.PlayerName)
		}
		acc.acsSum += float64(r.ACS)
		acc.econSum += r.EconRating
		acc.kdSum += r.KDRatio()
		acc.kills += r.Kills
		acc.deaths += r.Deaths
		acc.assists += r.Assists
		acc.played++
	}

	aggregates := make([]domain.PlayerAggregate, 0, len(order))
	for _, name := range order {
		acc := groups[name]
		n := float64(acc.played)
		aggregates = append(aggregates, domain.PlayerAggregate{
			PlayerName: name,
			Stats: domain.AggregateStats{
				AvgACS:        round2(acc.acsSum / n),
				AvgEconRating: round2(acc.econSum / n),
				AvgKDRatio:    round2(acc.kdSum / n),
				TotalKills:    acc.kills,
				TotalDeaths:   acc.deaths,
				TotalAssists:  acc.assists,
				MatchesPlayed: acc.played,
			},
		})
	}
	return aggregates
}

// Rank orders aggregates by average ACS descending and assigns positions
// 1..N with no gaps. The sort is stable, ties keep first-seen order.
func Rank(aggregates []domain.PlayerAggregate) []domain.LeaderboardRow {
	ranked := make([]domain.PlayerAggregate, len(aggregates))
	copy(ranked, aggregates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stats.AvgACS > ranked[j].Stats.AvgACS
	})

	rows := make([]domain.LeaderboardRow, 0, len(ranked))
	for i, a := range ranked {
		rows = append(rows, domain.LeaderboardRow{
			Position:   i + 1,
			PlayerName: a.PlayerName,
			Stats:      a.Stats,
		})
	}
	return rows
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
