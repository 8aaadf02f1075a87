package service

import "context"

// OrderNumberGenerator issues human-readable order numbers.
type OrderNumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}
