package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BidStatus is the lifecycle state of a bid.
type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

// Valid reports whether s is one of the known bid states.
func (s BidStatus) Valid() bool {
	switch s {
	case BidStatusPending, BidStatusAccepted, BidStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether a bid in this state can no longer transition.
func (s BidStatus) Terminal() bool {
	return s == BidStatusAccepted || s == BidStatusRejected
}

// User is a marketplace participant. Reference data only, never mutated.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Collection is an item listing with stock and an asking price, owned by one user.
type Collection struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	OwnerID     string          `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Bid is a monetary offer by a non-owner user against a collection.
type Bid struct {
	ID           string          `json:"id"`
	CollectionID string          `json:"collection_id"`
	Price        decimal.Decimal `json:"price"`
	UserID       string          `json:"user_id"`
	Status       BidStatus       `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BidWithUser is a bid joined with its bidder.
type BidWithUser struct {
	Bid
	User User `json:"user"`
}

// CollectionWithOwner is a collection joined with its owner.
type CollectionWithOwner struct {
	Collection
	Owner User `json:"owner"`
}

// CollectionWithBids is a collection joined with its owner and all of its bids.
type CollectionWithBids struct {
	Collection
	Bids  []BidWithUser `json:"bids"`
	Owner User          `json:"owner"`
}

// CollectionPatch carries the optional fields of a collection update.
// Nil fields are left untouched.
type CollectionPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock"`
	Price       *decimal.Decimal `json:"price"`
}

// BidPatch carries the optional fields of a bid update. Nil fields are left
// untouched. Status edits are subject to the same state-machine checks as acceptance.
type BidPatch struct {
	Price  *decimal.Decimal `json:"price"`
	Status *BidStatus       `json:"status"`
}
