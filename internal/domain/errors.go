package domain

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrTicketNotFound = errors.New("ticket not found")
)

var (
	ErrCapacityExceeded      = errors.New("event is sold out")
	ErrInvalidCode           = errors.New("invalid ticket code")
	ErrTicketAlreadyRedeemed = errors.New("ticket already redeemed")
)

// ErrCodeCollision is transient: the issuer retries with a fresh code.
var ErrCodeCollision = errors.New("ticket code already exists")

var (
	ErrValidation = errors.New("validation error")
)
