package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidChoices     = errors.New("invalid choices")
	ErrGoalRequired       = errors.New("goal is required")
	ErrUnsupportedStore   = errors.New("unsupported library backend")
	ErrDuplicateBlueprint = errors.New("duplicate blueprint")
)
