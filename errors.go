package portfolio

import "errors"

// Sentinel errors for trading and reporting operations. Callers match them
// with errors.Is; operations wrap them with context where useful.
var (
	// ErrInvalidQuantity reports a zero or negative quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrUnknownSymbol reports a symbol the provider cannot resolve, or one
	// that is not currently held, depending on the operation.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrInsufficientFunds reports a purchase cost above the cash balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientHoldings reports a sale quantity above the held total.
	ErrInsufficientHoldings = errors.New("insufficient holdings")
	// ErrQuoteUnavailable reports an empty provider result for an operation
	// that requires a live price.
	ErrQuoteUnavailable = errors.New("quote unavailable")
	// ErrNetworkFailure reports a provider call that could not complete.
	// Timeouts are classified here and are retryable.
	ErrNetworkFailure = errors.New("network failure")
)
