package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/debduthira/valorant-prs/auth/gen/model"
	"github.com/debduthira/valorant-prs/auth/gen/table"
	"github.com/debduthira/valorant-prs/auth/service"
	"github.com/debduthira/valorant-prs/auth/storage"
	"github.com/debduthira/valorant-prs/auth/users"
	sqlite3migrate "github.com/debduthira/valorant-prs/internal/migrate"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg service.Config) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "auth-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3migrate.UpAuthDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("auth storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	var dest model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, storage.ErrUserNotFound
		}
		return users.User{}, err
	}
	return convertUserToDomain(dest)
}

func (s *Storage) GetUserByName(ctx context.Context, name string) (users.User, error) {
	var dest model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
		FROM(table.Users).
		WHERE(table.Users.Username.EQ(sqlite.String(name))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, storage.ErrUserNotFound
		}
		return users.User{}, err
	}
	return convertUserToDomain(dest)
}

func (s *Storage) GetUserSecret(ctx context.Context, name string) ([]byte, error) {
	var dest model.Users
	err := table.Users.
		SELECT(table.Users.PasswordHash).
		FROM(table.Users).
		WHERE(table.Users.Username.EQ(sqlite.String(name))).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, err
	}
	return []byte(dest.PasswordHash), nil
}

func (s *Storage) CreateUser(ctx context.Context, user users.User, passwordHash []byte) error {
	dbUser := model.Users{
		ID:           user.ID.String(),
		Username:     user.Name,
		PasswordHash: string(passwordHash),
		Role:         string(user.Role),
	}
	_, err := table.Users.INSERT(table.Users.AllColumns).MODEL(dbUser).ExecContext(ctx, s.db)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return storage.ErrUserExists
		}
		return err
	}
	return nil
}

func convertUserToDomain(user model.Users) (users.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return users.User{}, err
	}
	role := users.Role(user.Role)
	if !role.Valid() {
		return users.User{}, errors.New("unknown role: " + user.Role)
	}
	return users.User{
		ID:   id,
		Name: user.Username,
		Role: role,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}
