package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

func init() {
	// money goes over the wire as JSON numbers, like the rest of the payload
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	MesaageUserNotAllowed     = "user not allowed"
	MessageFailedBodyRequest  = "invalid request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"

	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)
