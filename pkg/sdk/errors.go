package mentorhub

import "github.com/kailas-cloud/mentorhub/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrInvalidSchema     = domain.ErrInvalidSchema
	ErrUnknownField      = domain.ErrUnknownField
	ErrInvalidRecord     = domain.ErrInvalidRecord
	ErrInvalidCriteria   = domain.ErrInvalidCriteria
	ErrInvalidStatus     = domain.ErrInvalidStatus
	ErrInvalidTransition = domain.ErrInvalidTransition
)
