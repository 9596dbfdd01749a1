package storage

import (
	"context"

	"github.com/debduthira/valorant-prs/auth/users"
	"github.com/debduthira/valorant-prs/internal/domain"
)

type MatchStorage interface {
	Add(ctx context.Context, record domain.MatchRecord) error
	// Delete removes a record under the ownership rule: players only
	// reach rows they own, admins reach any row. Deleting zero rows is
	// not an error.
	Delete(ctx context.Context, recordID int, actingUser users.User) error
	ListByPlayer(ctx context.Context, playerName string) ([]domain.MatchRecord, error)
	ListAll(ctx context.Context) ([]domain.MatchRecord, error)
}
