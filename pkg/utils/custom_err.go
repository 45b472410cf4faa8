package utils

import "errors"

var (
	ErrPOINotFound      = errors.New("poi not found")
	ErrRouteNotFound    = errors.New("route not found")
	ErrProgressNotFound = errors.New("progress not found")

	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrCoordinatePair    = errors.New("latitude and longitude must be provided together")
	ErrTitleRequired     = errors.New("title is required")

	ErrProgressExists = errors.New("progress for this route already exists")
	ErrNotOwner       = errors.New("not enough permissions")

	ErrInvalidSkip   = errors.New("invalid skip parameter")
	ErrInvalidLimit  = errors.New("invalid limit parameter")
	ErrDatabaseError = errors.New("database error")
)
