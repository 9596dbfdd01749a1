package sqlite

import (
	"github.com/debduthira/valorant-prs/gen/model"
	"github.com/debduthira/valorant-prs/internal/domain"

	"github.com/google/uuid"
)

func convertMatchesToDomain(matches []model.Matches) ([]domain.MatchRecord, error) {
	converted := make([]domain.MatchRecord, 0, len(matches))
	for _, match := range matches {
		m, err := convertMatchToDomain(match)
		if err != nil {
			return nil, err
		}
		converted = append(converted, m)
	}
	return converted, nil
}

func convertMatchToDomain(match model.Matches) (domain.MatchRecord, error) {
	userID, err := uuid.Parse(match.UserID)
	if err != nil {
		return domain.MatchRecord{}, err
	}
	return domain.MatchRecord{
		ID:          int(match.ID),
		UserID:      userID,
		PlayerName:  match.PlayerName,
		WinLoss:     match.WinLoss,
		MapName:     match.MapName,
		Agent:       match.Agent,
		CurrentRank: match.CurrentRank,
		ACS:         int(match.Acs),
		EconRating:  match.EconRating,
		Kills:       int(match.Kills),
		Deaths:      int(match.Deaths),
		Assists:     int(match.Assists),
	}, nil
}

func convertMatchFromDomain(record domain.MatchRecord) model.Matches {
	return model.Matches{
		ID:          int32(record.ID),
		UserID:      record.UserID.String(),
		PlayerName:  record.PlayerName,
		WinLoss:     record.WinLoss,
		MapName:     record.MapName,
		Agent:       record.Agent,
		CurrentRank: record.CurrentRank,
		Acs:         int32(record.ACS),
		EconRating:  record.EconRating,
		Kills:       int32(record.Kills),
		Deaths:      int32(record.Deaths),
		Assists:     int32(record.Assists),
	}
}
