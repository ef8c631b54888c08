package monnify

import (
	"context"

	apperrors "monnifyease/pkg/errors"
)

// Authenticator produces the Authorization header value for an API request.
type Authenticator interface {
	Authorization(ctx context.Context) (string, error)
}

// StaticKey authorizes every request with the key itself as a bearer credential.
type StaticKey string

func (k StaticKey) Authorization(context.Context) (string, error) {
	if k == "" {
		return "", apperrors.Authentication("static key is empty", apperrors.ErrMissingCredentials)
	}
	return "Bearer " + string(k), nil
}

// invalidator is implemented by authenticators holding a cached credential
// that a 401 response should discard.
type invalidator interface {
	Invalidate(ctx context.Context) error
}
