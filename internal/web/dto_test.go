package web

import (
	"errors"
	"testing"

	"github.com/debduthira/valorant-prs/auth/users"

	"github.com/google/uuid"
)

func validForm() matchForm {
	return matchForm{
		playerName:  "jett_main",
		winLoss:     "Win",
		mapName:     "Ascent",
		agent:       "Jett",
		currentRank: "Diamond 2",
		acs:         245,
		econRating:  72.5,
		kills:       21,
		deaths:      14,
		assists:     6,
	}
}

func Test_matchForm_validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*matchForm)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*matchForm) {},
		},
		{
			name:    "empty player name",
			mutate:  func(f *matchForm) { f.playerName = "" },
			wantErr: ErrMissingPlayerName,
		},
		{
			name:    "win/loss outside vocabulary",
			mutate:  func(f *matchForm) { f.winLoss = "Draw" },
			wantErr: ErrUnknownWinLoss,
		},
		{
			name:    "map outside vocabulary",
			mutate:  func(f *matchForm) { f.mapName = "Dust2" },
			wantErr: ErrUnknownMap,
		},
		{
			name:    "agent outside vocabulary",
			mutate:  func(f *matchForm) { f.agent = "Tejo" },
			wantErr: ErrUnknownAgent,
		},
		{
			name:    "rank outside vocabulary",
			mutate:  func(f *matchForm) { f.currentRank = "Diamond 4" },
			wantErr: ErrUnknownRank,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			form := validForm()
			tt.mutate(&form)
			err := form.validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func Test_matchForm_convertToDomainMatch(t *testing.T) {
	user := users.User{ID: uuid.New(), Name: "jett_main", Role: users.RolePlayer}
	got := validForm().convertToDomainMatch(user)
	if got.UserID != user.ID {
		t.Errorf("UserID = %v, want %v", got.UserID, user.ID)
	}
	if got.PlayerName != "jett_main" || got.WinLoss != "Win" || got.MapName != "Ascent" {
		t.Errorf("unexpected record %+v", got)
	}
	if got.ACS != 245 || got.EconRating != 72.5 || got.Kills != 21 || got.Deaths != 14 || got.Assists != 6 {
		t.Errorf("unexpected stats %+v", got)
	}
	if got.ID != 0 {
		t.Error("id must be assigned by storage, not the form")
	}
}
