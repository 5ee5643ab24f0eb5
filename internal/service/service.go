// Package service sits between the presentation layer and the core: it
// validates input, calls the gateway with the session's credential and
// records outcomes in the stores.
package service

import (
	"context"
	"errors"

	"github.com/Varun5711/mealcounter/internal/models"
	"github.com/Varun5711/mealcounter/internal/models/user"
)

// ErrNoSession is returned when an operation needs a signed-in user.
var ErrNoSession = errors.New("not signed in")

// Authenticator is the part of *gateway.Client the auth flow needs.
type Authenticator interface {
	Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResponse, error)
	Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error)
}

// CalorieLookup is the part of *gateway.Client the search flow needs.
type CalorieLookup interface {
	Lookup(ctx context.Context, req models.LookupRequest, token string) (*models.LookupResult, error)
}
