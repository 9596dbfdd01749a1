package domain

import (
	mapset "github.com/deckarep/golang-set/v2"
)

const (
	Win  = "Win"
	Loss = "Loss"
)

// Closed vocabularies, reproduced exactly for compatibility with the
// original tracker's data.
var (
	Maps = []string{
		"Bind", "Split", "Ascent", "Haven", "Breeze",
		"Fracture", "Icebox", "Pearl", "Sunset", "Abyss",
	}

	Agents = []string{
		"Astra", "Breach", "Brimstone", "Chamber", "Clove", "Cypher",
		"Deadlock", "Harbor", "Iso", "Jett", "Kay/O", "Killjoy", "Neon",
		"Omen", "Phoenix", "Raze", "Reyna", "Sage", "Skye", "Sova",
		"Viper", "Vyse", "Yoru",
	}

	Ranks = []string{
		"Unranked",
		"Iron 1", "Iron 2", "Iron 3",
		"Bronze 1", "Bronze 2", "Bronze 3",
		"Silver 1", "Silver 2", "Silver 3",
		"Gold 1", "Gold 2", "Gold 3",
		"Platinum 1", "Platinum 2", "Platinum 3",
		"Diamond 1", "Diamond 2", "Diamond 3",
		"Ascendant 1", "Ascendant 2", "Ascendant 3",
		"Immortal 1", "Immortal 2", "Immortal 3",
		"Radiant",
	}

	WinLossValues = []string{Win, Loss}
)

var (
	mapSet     = mapset.NewSet(Maps...)
	agentSet   = mapset.NewSet(Agents...)
	rankSet    = mapset.NewSet(Ranks...)
	winLossSet = mapset.NewSet(WinLossValues...)
)

func ValidMap(name string) bool { return mapSet.Contains(name) }

func ValidAgent(name string) bool { return agentSet.Contains(name) }

func ValidRank(name string) bool { return rankSet.Contains(name) }

func ValidWinLoss(value string) bool { return winLossSet.Contains(value) }
