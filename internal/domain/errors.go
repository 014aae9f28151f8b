package domain

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUpgradeRequired = errors.New("upgrade required")
	ErrAnalysisBusy    = errors.New("analysis already in progress")
	ErrProviderFailure = errors.New("provider failure")
	ErrSignalNotFound  = errors.New("signal not found")
	ErrUnsupportedPair = errors.New("unsupported pair")
)
