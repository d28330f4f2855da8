package core

import "errors"

var (
	ErrMetadataUnavailable = errors.New("exchange metadata unavailable")
	ErrMarketNotFound      = errors.New("market not found")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidCost         = errors.New("invalid cost")
)
