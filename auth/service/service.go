package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/debduthira/valorant-prs/auth/storage"
	"github.com/debduthira/valorant-prs/auth/users"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password, callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrForbidden          = errors.New("access denied")
	ErrNotAuthorized      = errors.New("unauthorized")
)

type Service struct {
	storage storage.AuthStorage
	cfg     Config
}

func New(cfg Config, storage storage.AuthStorage) *Service {
	return &Service{
		cfg:     cfg,
		storage: storage,
	}
}

// Register creates a player account. No session is established, the new
// user still has to log in.
func (s *Service) Register(ctx context.Context, name string, password string, passwordRepeat string) error {
	if password != passwordRepeat {
		return ErrPasswordMismatch
	}
	_, err := s.storage.GetUserByName(ctx, name)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return err
	}
	return s.createUser(ctx, name, password, users.RolePlayer)
}

// CreateAdmin inserts an admin account directly. Privileged path, never
// reachable from the registration surface.
func (s *Service) CreateAdmin(ctx context.Context, name string, password string) error {
	return s.createUser(ctx, name, password, users.RoleAdmin)
}

func (s *Service) createUser(ctx context.Context, name string, password string, role users.Role) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost())
	if err != nil {
		return err
	}
	err = s.storage.CreateUser(ctx, users.User{
		ID:   uuid.New(),
		Name: name,
		Role: role,
	}, hash)
	if err != nil {
		// The unique index on username is the arbiter when two
		// registrations race past the pre-check.
		if errors.Is(err, storage.ErrUserExists) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (s *Service) bcryptCost() int {
	if s.cfg.BcryptCost > 0 {
		return s.cfg.BcryptCost
	}
	return bcrypt.DefaultCost
}

func (s *Service) Login(ctx context.Context, name string, password string) (users.User, error) {
	hash, err := s.storage.GetUserSecret(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return users.User{}, ErrInvalidCredentials
		}
		return users.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return users.User{}, ErrInvalidCredentials
	}
	return s.storage.GetUserByName(ctx, name)
}

func (s *Service) GenerateJWTCookie(userID uuid.UUID, host string) (*fiber.Cookie, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	expirationTime := time.Now().Add(expiresIn)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		HTTPOnly: true,
	}, nil
}

// Auth resolves the session cookie to a user and checks the configured
// access rules for the request. Every access-control decision for the web
// surface funnels through here.
func (s *Service) Auth(ctx context.Context, cookie string, method string, url string) (users.User, error) {
	user, err := s.getUserFromToken(ctx, cookie)
	if err != nil {
		return users.User{}, ErrNotAuthorized
	}

	for _, rule := range s.cfg.Rules {
		r, err := regexp.Compile(rule.Path)
		if err != nil {
			return users.User{}, err
		}
		if !r.MatchString(url) {
			continue
		}
		for _, ruleMethod := range rule.Method {
			if ruleMethod != "*" && ruleMethod != method {
				continue
			}
			for _, role := range rule.Allow {
				if role == "*" {
					return user, nil
				}
				if role == string(user.Role) {
					return user, nil
				}
			}
			if user.Role == "" {
				return users.User{}, ErrNotAuthorized
			}
			return users.User{}, ErrForbidden
		}
	}
	return users.User{}, ErrForbidden
}

func (s *Service) getUserFromToken(ctx context.Context, cookie string) (users.User, error) {
	if cookie == "" {
		return users.User{}, nil
	}
	token, err := jwt.ParseWithClaims(cookie, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token), nil
	})
	if err != nil {
		ve := jwt.ValidationError{}
		if ok := errors.As(err, &ve); !ok {
			return users.User{}, err
		}
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return users.User{}, errors.New("bad request")
		} else if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return users.User{}, errors.New("token expired")
		}
		return users.User{}, err
	}
	if !token.Valid {
		return users.User{}, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok {
		return users.User{}, errors.New("bad request")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return users.User{}, err
	}
	return s.storage.GetUser(ctx, id)
}
