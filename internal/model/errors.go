package model

import "errors"

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidKind            = errors.New("invalid transaction kind")
	ErrOutOfRange             = errors.New("transaction position out of range")
	ErrPersistenceWriteFailed = errors.New("failed to write ledger file")
	ErrPersistenceReadFailed  = errors.New("failed to read ledger file")
)
