package commerce

import "errors"

var (
	ErrAdminNotAllowed      = errors.New("admin accounts cannot transact")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrNotOwned             = errors.New("game not owned")
	ErrRefundWindowExpired  = errors.New("refund window expired")
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrDepositLimitExceeded = errors.New("deposit would exceed wallet limit")
)
