package sqlite

import (
	"context"
	"database/sql"

	"github.com/debduthira/valorant-prs/auth/users"
	"github.com/debduthira/valorant-prs/gen/model"
	"github.com/debduthira/valorant-prs/gen/table"
	"github.com/debduthira/valorant-prs/internal/config"
	"github.com/debduthira/valorant-prs/internal/domain"
	sqlite3migrate "github.com/debduthira/valorant-prs/internal/migrate"
	"github.com/debduthira/valorant-prs/internal/storage"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.MatchStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "match-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3migrate.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("match storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) Add(ctx context.Context, record domain.MatchRecord) error {
	dbMatch := convertMatchFromDomain(record)
	_, err := table.Matches.
		INSERT(table.Matches.MutableColumns).
		MODEL(dbMatch).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) Delete(ctx context.Context, recordID int, actingUser users.User) error {
	where := table.Matches.ID.EQ(sqlite.Int(int64(recordID)))
	if !actingUser.Role.CanModerate() {
		where = where.AND(table.Matches.UserID.EQ(sqlite.String(actingUser.ID.String())))
	}
	_, err := table.Matches.
		DELETE().
		WHERE(where).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) ListByPlayer(ctx context.Context, playerName string) ([]domain.MatchRecord, error) {
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.PlayerName.EQ(sqlite.String(playerName))).
		ORDER_BY(table.Matches.ID.DESC()).
		QueryContext(ctx, s.db, &matches)
	if err != nil {
		return nil, err
	}
	return convertMatchesToDomain(matches)
}

func (s *Storage) ListAll(ctx context.Context) ([]domain.MatchRecord, error) {
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		ORDER_BY(table.Matches.ID.DESC()).
		QueryContext(ctx, s.db, &matches)
	if err != nil {
		return nil, err
	}
	return convertMatchesToDomain(matches)
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}
