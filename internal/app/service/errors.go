package service

import "github.com/pkg/errors"

var (
	ErrNotMonitored = errors.New("channel is not monitored")
	ErrInvalidHours = errors.New("hours must be at least 1")
	ErrInvalidCount = errors.New("count must be between 1 and 100")
	ErrNoTarget     = errors.New("no user or role given")
)
