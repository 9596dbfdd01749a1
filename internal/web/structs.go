package web

import (
	"errors"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

type signupRequest struct {
	name           string
	password       string
	passwordRepeat string
}

func parseSignUpRequest(ctx *fiber.Ctx) (signupRequest, error) {
	var err error
	name := ctx.FormValue("username", "")
	err = errors.Join(err, validateUserName(name))
	password := ctx.FormValue("password", "")
	err = errors.Join(err, validatePassword(password))
	if err != nil {
		return signupRequest{}, err
	}
	return signupRequest{
		name:           name,
		password:       password,
		passwordRepeat: ctx.FormValue("password-repeat", ""),
	}, nil
}

type signInRequest struct {
	name     string
	password string
}

func parseSignInRequest(ctx *fiber.Ctx) (req signInRequest, err error) {
	name := ctx.FormValue("username", "")
	err = errors.Join(err, validateUserName(name))
	password := ctx.FormValue("password", "")
	err = errors.Join(err, validatePassword(password))
	if err != nil {
		return signInRequest{}, err
	}
	return signInRequest{
		name:     name,
		password: password,
	}, nil
}

func validatePassword(password string) error {
	if password == "" {
		return errors.New("password must not be empty")
	}
	return nil
}

var nameRegexp = regexp.MustCompile(`^[A-Za-z]\w+$`)

func validateUserName(name string) error {
	var err error
	if name == "" {
		err = errors.Join(err, errors.New("username must not be empty"))
	}
	if !nameRegexp.MatchString(name) {
		err = errors.Join(err, errors.New("username must start with a latin letter and contain only latin letters, digits and underscores"))
	}
	return err
}
