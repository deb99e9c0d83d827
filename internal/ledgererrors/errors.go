package ledgererrors

import "errors"

// Lookup errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrBidNotFound        = errors.New("bid not found")
)

// Business-rule errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrSelfBid            = errors.New("collection owner cannot bid on their own collection")
	ErrDuplicatePending   = errors.New("user already has a pending bid for this collection")
	ErrBidNotPending      = errors.New("only pending bids can be accepted or rejected")
	ErrCollectionAccepted = errors.New("collection already has an accepted bid")
)
