package postgres

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strconv"

	"github.com/debduthira/valorant-prs/auth/service"
	"github.com/debduthira/valorant-prs/auth/storage"
	"github.com/debduthira/valorant-prs/auth/users"
	"github.com/debduthira/valorant-prs/gen/auth/public/model"
	"github.com/debduthira/valorant-prs/gen/auth/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // postgresql driver
)

// uniqueViolation is the postgres error code raised by the unique index
// on users.username.
const uniqueViolation = "23505"

type Storage struct {
	db *sql.DB
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(ctx context.Context, cfg service.Config) (*Storage, error) {
	db, err := sql.Open("pgx", NewURLConnectionString(
		"postgres",
		cfg.DB.Host+":"+strconv.Itoa(cfg.DB.Port),
		cfg.DB.DBName,
		cfg.DB.Username,
		cfg.DB.Password,
	))
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

func (s Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) (users.User, error) {
		var dest model.Users
		err := table.Users.
			SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
			FROM(table.Users).
			WHERE(table.Users.ID.EQ(postgres.String(id.String()))).
			QueryContext(ctx, tx, &dest)
		if err != nil {
			if errors.Is(err, qrm.ErrNoRows) {
				return users.User{}, storage.ErrUserNotFound
			}
			return users.User{}, err
		}
		return convertDBUserToModel(dest)
	})
}

func (s Storage) GetUserByName(ctx context.Context, name string) (users.User, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) (users.User, error) {
		var dest model.Users
		err := table.Users.
			SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
			FROM(table.Users).
			WHERE(table.Users.Username.EQ(postgres.String(name))).
			QueryContext(ctx, tx, &dest)
		if err != nil {
			if errors.Is(err, qrm.ErrNoRows) {
				return users.User{}, storage.ErrUserNotFound
			}
			return users.User{}, err
		}
		return convertDBUserToModel(dest)
	})
}

func (s Storage) GetUserSecret(ctx context.Context, name string) ([]byte, error) {
	return inTx(ctx, s.db, func(tx *sql.Tx) ([]byte, error) {
		var dest model.Users
		err := table.Users.
			SELECT(table.Users.PasswordHash).
			FROM(table.Users).
			WHERE(table.Users.Username.EQ(postgres.String(name))).
			QueryContext(ctx, tx, &dest)
		if err != nil {
			if errors.Is(err, qrm.ErrNoRows) {
				return nil, storage.ErrUserNotFound
			}
			return nil, err
		}
		return []byte(dest.PasswordHash), nil
	})
}

func (s Storage) CreateUser(ctx context.Context, user users.User, passwordHash []byte) error {
	return inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		dbUser := model.Users{
			ID:           user.ID.String(),
			Username:     user.Name,
			PasswordHash: string(passwordHash),
			Role:         string(user.Role),
		}
		_, err := table.Users.INSERT(table.Users.AllColumns).MODEL(dbUser).ExecContext(ctx, tx)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return storage.ErrUserExists
			}
			return err
		}
		return nil
	})
}

func convertDBUserToModel(user model.Users) (users.User, error) {
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

func inTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	value, err := fn(tx)
	if err != nil {
		return zero, errors.Join(err, tx.Rollback())
	}
	return value, tx.Commit()
}

func inTxSimple(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	_, err := inTx(ctx, db, func(tx *sql.Tx) (struct{}, error) { return struct{}{}, fn(tx) })
	return err
}

func NewURLConnectionString(protocol, host, dbName, username, password string) string {
	v := make(url.Values)
	u := url.URL{
		Scheme:   protocol,
		Host:     host,
		Path:     dbName,
		User:     url.UserPassword(username, password),
		RawQuery: v.Encode(),
	}
	return u.String()
}
