// Package models defines the data structures used throughout the application.
// It includes the domain entities for users, items, swap requests and history
// records, along with the request and response payloads exchanged over HTTP.
package models

import "time"

// User roles recognized by the authorization checks.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Item availability statuses. An item only ever moves forward from
// StatusAvailable to one of the two terminal states.
const (
	StatusAvailable = "available"
	StatusSwapped   = "swapped"
	StatusRedeemed  = "redeemed"
)

// Swap request statuses.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// History actions recorded when an item leaves the available state.
const (
	ActionSwapped  = "swapped"
	ActionRedeemed = "redeemed"
)

// Swap response actions accepted from the item owner.
const (
	SwapActionApprove = "approve"
	SwapActionReject  = "reject"
)

// Claim is the verified caller identity extracted from a request token.
type Claim struct {
	UserID int32
	Role   string
}

// User represents a registered user of the exchange.
// Password carries the plaintext credential in-flight during registration
// and login; the storage layer only ever persists its bcrypt hash.
type User struct {
	ID       int32
	Email    string
	Name     string
	Password string
	Points   int
	Role     string
}

// Item represents a listed garment together with its swap-request queue
// and history log. ReservedFor is zero unless the item has been redeemed.
type Item struct {
	ID           int32          `json:"id"`
	OwnerID      int32          `json:"ownerId"`
	OwnerName    string         `json:"ownerName,omitempty"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Type         string         `json:"type"`
	Size         string         `json:"size"`
	Condition    string         `json:"condition"`
	Tags         []string       `json:"tags"`
	Images       []string       `json:"images"`
	Status       string         `json:"status"`
	Approved     bool           `json:"approved"`
	ReservedFor  int32          `json:"reservedFor,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	SwapRequests []SwapRequest  `json:"swapRequests,omitempty"`
	History      []HistoryEntry `json:"history,omitempty"`
}

// SwapRequest is a pending, approved or rejected request by one user to
// swap for another user's item.
type SwapRequest struct {
	ID            int32     `json:"id"`
	RequesterID   int32     `json:"requesterId"`
	RequesterName string    `json:"requesterName,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HistoryEntry is a single append-only audit record on an item.
type HistoryEntry struct {
	UserID    int32     `json:"userId"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"date"`
}

// ListingFilter holds the optional facet constraints for browsing approved
// items. Unset fields impose no constraint; Tags matches items carrying any
// of the listed tags.
type ListingFilter struct {
	Category  string
	Size      string
	Type      string
	Condition string
	Tags      []string
}

// RegisterRequest represents the registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is the public projection of a user returned to callers.
type UserInfo struct {
	ID     int32  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Points int    `json:"points"`
	Role   string `json:"role"`
}

// ProfileResponse is the caller's account view: their public user fields
// plus the item ids they have swapped and redeemed.
type ProfileResponse struct {
	UserInfo
	Swapped  []int32 `json:"swapped"`
	Redeemed []int32 `json:"redeemed"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// CreateItemRequest represents the upload payload. Images are opaque blob
// references issued by the external file storage.
type CreateItemRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Size        string   `json:"size"`
	Condition   string   `json:"condition"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// SwapResponseRequest represents the owner's decision on a pending swap
// request.
type SwapResponseRequest struct {
	RequesterID int32  `json:"requesterId"`
	Action      string `json:"action"`
}

// ErrorResponse represents a generic error response payload.
// It contains a string describing the encountered error.
type ErrorResponse struct {
	Errors string `json:"errors"`
}
