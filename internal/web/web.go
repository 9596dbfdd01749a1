package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	embedded "github.com/debduthira/valorant-prs"
	authservice "github.com/debduthira/valorant-prs/auth/service"
	"github.com/debduthira/valorant-prs/auth/users"
	"github.com/debduthira/valorant-prs/internal/config"
	"github.com/debduthira/valorant-prs/internal/domain"
	"github.com/debduthira/valorant-prs/internal/service"
	"github.com/debduthira/valorant-prs/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
)

type Server struct {
	auth  *authservice.Service
	stats *service.StatsService
	app   *fiber.App
	cfg   config.Server
}

func New(ps *service.StatsService, cfg config.Server, authService *authservice.Service) (*Server, error) {
	server := Server{
		stats: ps,
		auth:  authService,
		cfg:   cfg,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		tokenCookie := c.Cookies("token")
		user, err := authService.Auth(c.Context(), tokenCookie, c.Method(), c.OriginalURL())
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrForbidden):
				c.Status(fiber.StatusForbidden)
			case errors.Is(err, authservice.ErrNotAuthorized):
				return c.Redirect(webpath.Signin)
			default:
				c.Status(fiber.StatusInternalServerError)
			}
			return nil
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})
	app.Get(webpath.Signin, server.HandleGetSignIn)
	app.Post(webpath.Signin, server.HandlePostSignIn)
	app.Get(webpath.Signup, server.HandleGetSignup)
	app.Post(webpath.Signup, server.HandlePostSignup)
	app.Get(webpath.Signout, server.HandleSignOut)
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})

	app.Get(webpath.ApiHome, server.handleLeaderboard)
	app.Get(webpath.ApiMatchesList, server.handleMatches)
	app.Get(webpath.ApiNewMatch, server.handleCreateMatchGet)
	app.Post(webpath.ApiNewMatch, server.handleCreateMatchPost)
	app.Post(webpath.ApiDeleteMatch, server.handleDeleteMatchPost)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

const userKey = "user"

func (s *Server) handleLeaderboard(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	rows, err := s.stats.Leaderboard(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("index",
		newData("Leaderboard").
			WithUser(user).
			With("Rows", rows),
		"layouts/main")
}

func (s *Server) handleMatches(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	matches, err := s.stats.MatchesFor(ctx.Context(), user)
	if err != nil {
		return err
	}
	return ctx.Render("matches",
		newData("Match Records").
			WithUser(user).
			With("Matches", matches),
		"layouts/main")
}

func (s *Server) handleCreateMatchGet(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	return ctx.Render("newMatch", s.newMatchData(user), "layouts/main")
}

func (s *Server) newMatchData(user users.User) data {
	return newData("Add Match").
		WithUser(user).
		With("Maps", domain.Maps).
		With("Agents", domain.Agents).
		With("Ranks", domain.Ranks).
		With("WinLoss", domain.WinLossValues)
}

func (s *Server) handleCreateMatchPost(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	form, err := parseMatchForm(ctx, user)
	if err != nil {
		return ctx.Render("newMatch", s.newMatchData(user).WithErrors(err), "layouts/main")
	}
	err = s.stats.AddMatch(ctx.Context(), form.convertToDomainMatch(user))
	if err != nil {
		return ctx.Render("newMatch", s.newMatchData(user).WithErrors(err), "layouts/main")
	}
	return ctx.Redirect(webpath.ApiMatchesList)
}

func (s *Server) handleDeleteMatchPost(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	recordID, err := strconv.Atoi(ctx.FormValue("record_id", ""))
	if err != nil {
		return ctx.Redirect(webpath.ApiMatchesList)
	}
	if err := s.stats.DeleteMatch(ctx.Context(), recordID, user); err != nil {
		return err
	}
	return ctx.Redirect(webpath.ApiMatchesList)
}

func (s *Server) HandleGetSignIn(ctx *fiber.Ctx) error {
	return ctx.Render("signin", newData("Sign In"), "layouts/main")
}

func (s *Server) HandlePostSignIn(ctx *fiber.Ctx) error {
	req, err := parseSignInRequest(ctx)
	if err != nil {
		return ctx.Render("signin", newData("Sign In").WithErrors(err), "layouts/main")
	}
	user, err := s.auth.Login(ctx.Context(), req.name, req.password)
	if err != nil {
		return ctx.Render("signin", newData("Sign In").WithErrors(err), "layouts/main")
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) HandleGetSignup(ctx *fiber.Ctx) error {
	return ctx.Render("signup", newData("Player Registration"), "layouts/main")
}

func (s *Server) HandlePostSignup(ctx *fiber.Ctx) error {
	req, err := parseSignUpRequest(ctx)
	if err != nil {
		return ctx.Render("signup", newData("Player Registration").WithErrors(err), "layouts/main")
	}
	err = s.auth.Register(ctx.Context(), req.name, req.password, req.passwordRepeat)
	if err != nil {
		if errors.Is(err, authservice.ErrUsernameTaken) || errors.Is(err, authservice.ErrPasswordMismatch) {
			return ctx.Render("signup", newData("Player Registration").WithErrors(err), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Signin)
}

func (s *Server) HandleSignOut(ctx *fiber.Ctx) error {
	ctx.ClearCookie("token")
	return ctx.Redirect(webpath.ApiHome)
}
