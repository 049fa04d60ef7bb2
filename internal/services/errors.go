// Package services defines the business logic for authentication, the
// service catalog, and contact submissions. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages is performed at the handler layer.
package services

import "errors"

var (
	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password. Callers must surface the same generic message in both
	// cases so responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
