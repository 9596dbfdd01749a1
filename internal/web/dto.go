package web

import (
	"errors"
	"strconv"

	"github.com/debduthira/valorant-prs/auth/users"
	"github.com/debduthira/valorant-prs/internal/domain"
	"github.com/debduthira/valorant-prs/internal/normalize"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrMissingPlayerName = errors.New("player name is required")
	ErrMissingStat       = errors.New("please fill in all required fields")
	ErrNegativeStat      = errors.New("stats must not be negative")
	ErrUnknownWinLoss    = errors.New("unknown win/loss value")
	ErrUnknownMap        = errors.New("unknown map")
	ErrUnknownAgent      = errors.New("unknown agent")
	ErrUnknownRank       = errors.New("unknown rank")
)

type matchForm struct {
	playerName  string
	winLoss     string
	mapName     string
	agent       string
	currentRank string
	acs         int
	econRating  float64
	kills       int
	deaths      int
	assists     int
}

// parseMatchForm reads the add-match form. Players submit under their own
// username no matter what the form carries, admins enter a free-text
// player name.
func parseMatchForm(ctx *fiber.Ctx, user users.User) (matchForm, error) {
	form := matchForm{
		playerName:  normalize.Name(ctx.FormValue("player_name", "")),
		winLoss:     ctx.FormValue("win_loss", ""),
		mapName:     ctx.FormValue("map_name", ""),
		agent:       ctx.FormValue("agent", ""),
		currentRank: ctx.FormValue("current_rank", ""),
	}
	if !user.Role.CanModerate() {
		form.playerName = user.Name
	}

	var err error
	form.acs, err = parseStatInt(ctx, "acs", err)
	form.econRating, err = parseStatFloat(ctx, "econ_rating", err)
	form.kills, err = parseStatInt(ctx, "kills", err)
	form.deaths, err = parseStatInt(ctx, "deaths", err)
	form.assists, err = parseStatInt(ctx, "assists", err)
	if err != nil {
		return matchForm{}, err
	}
	if err := form.validate(); err != nil {
		return matchForm{}, err
	}
	return form, nil
}

func parseStatInt(ctx *fiber.Ctx, field string, err error) (int, error) {
	raw := ctx.FormValue(field, "")
	if raw == "" {
		return 0, errors.Join(err, ErrMissingStat)
	}
	v, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, errors.Join(err, ErrMissingStat)
	}
	if v < 0 {
		return 0, errors.Join(err, ErrNegativeStat)
	}
	return v, err
}

func parseStatFloat(ctx *fiber.Ctx, field string, err error) (float64, error) {
	raw := ctx.FormValue(field, "")
	if raw == "" {
		return 0, errors.Join(err, ErrMissingStat)
	}
	v, convErr := strconv.ParseFloat(raw, 64)
	if convErr != nil {
		return 0, errors.Join(err, ErrMissingStat)
	}
	if v < 0 {
		return 0, errors.Join(err, ErrNegativeStat)
	}
	return v, err
}

func (f matchForm) validate() error {
	var err error
	if f.playerName == "" {
		err = errors.Join(err, ErrMissingPlayerName)
	}
	if !domain.ValidWinLoss(f.winLoss) {
		err = errors.Join(err, ErrUnknownWinLoss)
	}
	if !domain.ValidMap(f.mapName) {
		err = errors.Join(err, ErrUnknownMap)
	}
	if !domain.ValidAgent(f.agent) {
		err = errors.Join(err, ErrUnknownAgent)
	}
	if !domain.ValidRank(f.currentRank) {
		err = errors.Join(err, ErrUnknownRank)
	}
	return err
}

func (f matchForm) convertToDomainMatch(user users.User) domain.MatchRecord {
	return domain.MatchRecord{
		UserID:      user.ID,
		PlayerName:  f.playerName,
		WinLoss:     f.winLoss,
		MapName:     f.mapName,
		Agent:       f.agent,
		CurrentRank: f.currentRank,
		ACS:         f.acs,
		EconRating:  f.econRating,
		Kills:       f.kills,
		Deaths:      f.deaths,
		Assists:     f.assists,
	}
}
