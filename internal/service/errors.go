package service

import (
	"errors"

	"github.com/chefskiss/festival-api/internal/domain"
	"github.com/chefskiss/festival-api/internal/repository"
)

var (
	ErrNoActiveEvent = errors.New("no active event")

	ErrInvalidStatus    = domain.ErrInvalidStatus
	ErrTransitionDenied = domain.ErrTransitionDenied

	ErrEventNotFound         = repository.ErrEventNotFound
	ErrActiveEventConflict   = repository.ErrActiveEventConflict
	ErrApplicationNotFound   = repository.ErrApplicationNotFound
	ErrApplicationIDConflict = repository.ErrApplicationIDConflict
)
