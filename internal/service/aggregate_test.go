package service

import (
	"reflect"
	"testing"

	"github.com/debduthira/valorant-prs/internal/domain"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.MatchRecord
		want    []domain.PlayerAggregate
	}{
		{
			name:    "empty input",
			records: nil,
			want:    []domain.PlayerAggregate{},
		},
		{
			name: "single player with deathless match",
			records: []domain.MatchRecord{
				{PlayerName: "A", ACS: 200, Kills: 10, Deaths: 5},
				{PlayerName: "A", ACS: 300, Kills: 20, Deaths: 0},
			},
			want: []domain.PlayerAggregate{
				{
					PlayerName: "A",
					Stats: domain.AggregateStats{
						AvgACS:        250,
						AvgKDRatio:    11, // mean(2.0, 20.0)
						TotalKills:    30,
						TotalDeaths:   5,
						MatchesPlayed: 2,
					},
				},
			},
		},
		{
			name: "groups keep first-seen order",
			records: []domain.MatchRecord{
				{PlayerName: "B", ACS: 100, Kills: 1, Deaths: 1},
				{PlayerName: "A", ACS: 300, Kills: 9, Deaths: 3},
				{PlayerName: "B", ACS: 200, Kills: 5, Deaths: 2},
			},
			want: []domain.PlayerAggregate{
				{
					PlayerName: "B",
					Stats: domain.AggregateStats{
						AvgACS:        150,
						AvgKDRatio:    1.75, // mean(1.0, 2.5)
						TotalKills:    6,
						TotalDeaths:   3,
						MatchesPlayed: 2,
					},
				},
				{
					PlayerName: "A",
					Stats: domain.AggregateStats{
						AvgACS:        300,
						AvgKDRatio:    3,
						TotalKills:    9,
						TotalDeaths:   3,
						MatchesPlayed: 1,
					},
				},
			},
		},
		{
			name: "averages round to two decimals",
			records: []domain.MatchRecord{
				{PlayerName: "A", ACS: 100, EconRating: 1.25, Kills: 1, Deaths: 3},
				{PlayerName: "A", ACS: 101, EconRating: 1.5, Kills: 1, Deaths: 3},
				{PlayerName: "A", ACS: 101, EconRating: 1.5, Kills: 1, Deaths: 3},
			},
			want: []domain.PlayerAggregate{
				{
					PlayerName: "A",
					Stats: domain.AggregateStats{
						AvgACS:        100.67,
						AvgEconRating: 1.42,
						AvgKDRatio:    0.33,
						TotalKills:    3,
						TotalDeaths:   9,
						MatchesPlayed: 3,
					},
				},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Aggregate(tt.records); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Aggregate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name       string
		aggregates []domain.PlayerAggregate
		want       []domain.LeaderboardRow
	}{
		{
			name:       "empty input",
			aggregates: nil,
			want:       []domain.LeaderboardRow{},
		},
		{
			name: "descending by avg acs",
			aggregates: []domain.PlayerAggregate{
				{PlayerName: "low", Stats: domain.AggregateStats{AvgACS: 250}},
				{PlayerName: "high", Stats: domain.AggregateStats{AvgACS: 300}},
			},
			want: []domain.LeaderboardRow{
				{Position: 1, PlayerName: "high", Stats: domain.AggregateStats{AvgACS: 300}},
				{Position: 2, PlayerName: "low", Stats: domain.AggregateStats{AvgACS: 250}},
			},
		},
		{
			name: "ties keep input order and take consecutive positions",
			aggregates: []domain.PlayerAggregate{
				{PlayerName: "first", Stats: domain.AggregateStats{AvgACS: 300}},
				{PlayerName: "third", Stats: domain.AggregateStats{AvgACS: 250}},
				{PlayerName: "second", Stats: domain.AggregateStats{AvgACS: 300}},
			},
			want: []domain.LeaderboardRow{
				{Position: 1, PlayerName: "first", Stats: domain.AggregateStats{AvgACS: 300}},
				{Position: 2, PlayerName: "second", Stats: domain.AggregateStats{AvgACS: 300}},
				{Position: 3, PlayerName: "third", Stats: domain.AggregateStats{AvgACS: 250}},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Rank(tt.aggregates); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Rank() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRank_doesNotMutateInput(t *testing.T) {
	aggregates := []domain.PlayerAggregate{
		{PlayerName: "low", Stats: domain.AggregateStats{AvgACS: 100}},
		{PlayerName: "high", Stats: domain.AggregateStats{AvgACS: 200}},
	}
	Rank(aggregates)
	if aggregates[0].PlayerName != "low" {
		t.Error("Rank must sort a copy, not the input")
	}
}
