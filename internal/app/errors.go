package app

import "errors"

// Business-rule errors surfaced by the engine. Handlers map each of these to
// a fixed HTTP status; everything else is treated as an internal failure.
var (
	// ErrNotFound indicates that the referenced item, user or swap request does not exist.
	ErrNotFound = errors.New("app: not found")
	// ErrForbidden indicates a role or ownership violation.
	ErrForbidden = errors.New("app: forbidden")
	// ErrInvalidState indicates that the item is not in the state the operation requires.
	ErrInvalidState = errors.New("app: item is not available")
	// ErrSelfReference indicates an attempt to swap for or redeem one's own item.
	ErrSelfReference = errors.New("app: cannot act on own item")
	// ErrDuplicateRequest indicates that the requester already has a pending swap request on the item.
	ErrDuplicateRequest = errors.New("app: swap request already pending")
	// ErrInsufficientPoints indicates that the redeemer's balance does not cover the redemption cost.
	ErrInsufficientPoints = errors.New("app: not enough points")
	// ErrUnauthorized indicates a missing or invalid caller identity.
	ErrUnauthorized = errors.New("app: unauthorized")
	// ErrValidation indicates malformed or incomplete input.
	ErrValidation = errors.New("app: invalid request")
	// ErrEmailTaken indicates a registration with an already registered email.
	ErrEmailTaken = errors.New("app: email already registered")
	// ErrInvalidCredentials indicates a failed login.
	ErrInvalidCredentials = errors.New("app: invalid credentials")
)
