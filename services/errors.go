package services

import "errors"

var (
	// ErrNotRegistered: the user has no player record yet.
	ErrNotRegistered = errors.New("player not registered")
	// ErrInsufficientFunds: purchase denied, nothing was changed.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrVehicleNotFound: no catalog entry for the requested vehicle id.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrChallengeNotFound: challenge was already accepted, swept, or never existed.
	ErrChallengeNotFound = errors.New("challenge not found or expired")
	// ErrSelfAccept: a challenger tried to accept their own challenge.
	ErrSelfAccept = errors.New("cannot accept own challenge")
)
