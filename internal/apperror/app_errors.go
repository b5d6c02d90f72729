package apperror

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRequestFailed      = errors.New("request failed")
	ErrRefreshFailed      = errors.New("action applied but game state refresh failed")
	ErrGameFinished       = errors.New("game is already finished")
	ErrUsage              = errors.New("invalid usage")
)
