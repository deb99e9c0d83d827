package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"collection-market/internal/ledgererrors"
	model "collection-market/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// LedgerStore defines the storage contract for the bid ledger. Every mutating
// operation is atomic with respect to all other operations on the store; in
// particular AcceptBid performs its guard checks and all status flips in a
// single indivisible step.
type LedgerStore interface {
	GetUser(id string) (model.User, error)
	ListUsers() []model.User

	InsertCollection(c model.Collection) error
	GetCollection(id string) (model.Collection, error)
	ListCollections() []model.Collection
	UpdateCollection(id string, patch model.CollectionPatch) (model.Collection, error)
	DeleteCollection(id string) error

	GetBid(id string) (model.Bid, error)
	ListBidsByCollection(collectionID string) []model.Bid
	InsertBid(bid model.Bid) error
	UpdateBid(id string, patch model.BidPatch) (model.Bid, error)
	DeleteBid(id string) error
	AcceptBid(id string) (model.Bid, []model.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of LedgerStore.
// A single RWMutex serializes all writes, so every multi-record transition
// (accept, cascade delete) is observed either fully applied or not at all.
type MemoryRepo struct {
	mu          sync.RWMutex
	users       map[string]model.User
	collections map[string]model.Collection
	bids        map[string]model.Bid
}

// NewMemoryRepo creates an empty in-memory store.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:       make(map[string]model.User),
		collections: make(map[string]model.Collection),
		bids:        make(map[string]model.Bid),
	}
}

// AddUser registers a user in the directory. Users are reference data supplied
// at startup (or by tests); the ledger itself never creates them.
func (r *MemoryRepo) AddUser(u model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

// GetUser returns the user with the given id.
func (r *MemoryRepo) GetUser(id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", id, ledgererrors.ErrUserNotFound)
	}
	return u, nil
}

// ListUsers returns the user directory sorted by name.
func (r *MemoryRepo) ListUsers() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users
}

// InsertCollection stores a new collection after verifying its owner exists.
func (r *MemoryRepo) InsertCollection(c model.Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[c.OwnerID]; !ok {
		return fmt.Errorf("insert collection: owner %s: %w", c.OwnerID, ledgererrors.ErrUserNotFound)
	}
	r.collections[c.ID] = c
	return nil
}

// GetCollection returns the collection with the given id.
func (r *MemoryRepo) GetCollection(id string) (model.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[id]
	if !ok {
		return model.Collection{}, fmt.Errorf("get collection %s: %w", id, ledgererrors.ErrCollectionNotFound)
	}
	return c, nil
}

// ListCollections returns all collections sorted by creation time, newest first.
func (r *MemoryRepo) ListCollections() []model.Collection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	collections := make([]model.Collection, 0, len(r.collections))
	for _, c := range r.collections {
		collections = append(collections, c)
	}
	sortByCreatedAtDesc(collections, func(c model.Collection) (time.Time, string) { return c.CreatedAt, c.ID })
	return collections
}

// UpdateCollection merges the non-nil patch fields into the collection and
// bumps its updated_at.
func (r *MemoryRepo) UpdateCollection(id string, patch model.CollectionPatch) (model.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collections[id]
	if !ok {
		return model.Collection{}, fmt.Errorf("update collection %s: %w", id, ledgererrors.ErrCollectionNotFound)
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Stock != nil {
		c.Stock = *patch.Stock
	}
	if patch.Price != nil {
		c.Price = *patch.Price
	}
	c.UpdatedAt = time.Now().UTC()

	r.collections[id] = c
	return c, nil
}

// DeleteCollection removes the collection and all of its bids in one step.
func (r *MemoryRepo) DeleteCollection(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.collections[id]; !ok {
		return fmt.Errorf("delete collection %s: %w", id, ledgererrors.ErrCollectionNotFound)
	}
	delete(r.collections, id)
	for bidID, b := range r.bids {
		if b.CollectionID == id {
			delete(r.bids, bidID)
		}
	}
	return nil
}

// GetBid returns the bid with the given id.
func (r *MemoryRepo) GetBid(id string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", id, ledgererrors.ErrBidNotFound)
	}
	return b, nil
}

// ListBidsByCollection returns every bid for the collection sorted by creation
// time, newest first. An unknown collection id yields an empty slice.
func (r *MemoryRepo) ListBidsByCollection(collectionID string) []model.Bid {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bidsForCollectionLocked(collectionID)
}

// bidsForCollectionLocked collects the collection's bids. Callers must hold at
// least the read lock.
func (r *MemoryRepo) bidsForCollectionLocked(collectionID string) []model.Bid {
	bids := make([]model.Bid, 0)
	for _, b := range r.bids {
		if b.CollectionID == collectionID {
			bids = append(bids, b)
		}
	}
	sortByCreatedAtDesc(bids, func(b model.Bid) (time.Time, string) { return b.CreatedAt, b.ID })
	return bids
}

// InsertBid stores a new bid. The referential and business invariants that
// depend on current ledger state (collection and bidder exist, bidder is not
// the owner, no second pending bid by the same user) are checked here, inside
// the critical section, so a concurrent accept or insert cannot slip between
// check and write.
func (r *MemoryRepo) InsertBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.collections[bid.CollectionID]
	if !ok {
		return fmt.Errorf("insert bid for collection %s: %w", bid.CollectionID, ledgererrors.ErrCollectionNotFound)
	}
	if _, ok := r.users[bid.UserID]; !ok {
		return fmt.Errorf("insert bid: user %s: %w", bid.UserID, ledgererrors.ErrUserNotFound)
	}
	if c.OwnerID == bid.UserID {
		return fmt.Errorf("insert bid for collection %s by user %s: %w", bid.CollectionID, bid.UserID, ledgererrors.ErrSelfBid)
	}
	for _, b := range r.bids {
		if b.CollectionID == bid.CollectionID && b.UserID == bid.UserID && b.Status == model.BidStatusPending {
			return fmt.Errorf("insert bid for collection %s by user %s: %w", bid.CollectionID, bid.UserID, ledgererrors.ErrDuplicatePending)
		}
	}

	r.bids[bid.ID] = bid
	return nil
}

// UpdateBid merges the non-nil patch fields into the bid and bumps its
// updated_at. Status edits obey the bid state machine: only a pending bid may
// change state, and moving to accepted is refused while another bid on the
// same collection is already accepted. Unlike AcceptBid this never touches
// sibling bids.
func (r *MemoryRepo) UpdateBid(id string, patch model.BidPatch) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bids[id]
	if !ok {
		return model.Bid{}, fmt.Errorf("update bid %s: %w", id, ledgererrors.ErrBidNotFound)
	}

	if patch.Status != nil && *patch.Status != b.Status {
		if b.Status != model.BidStatusPending {
			return model.Bid{}, fmt.Errorf("update bid %s: status is %s: %w", id, b.Status, ledgererrors.ErrBidNotPending)
		}
		if *patch.Status == model.BidStatusAccepted {
			if winner, found := r.acceptedBidLocked(b.CollectionID, id); found {
				return model.Bid{}, fmt.Errorf("update bid %s: bid %s already accepted: %w", id, winner.ID, ledgererrors.ErrCollectionAccepted)
			}
		}
		b.Status = *patch.Status
	}
	if patch.Price != nil {
		b.Price = *patch.Price
	}
	b.UpdatedAt = time.Now().UTC()

	r.bids[id] = b
	return b, nil
}

// DeleteBid removes a bid. Administrative path, not part of the acceptance
// protocol.
func (r *MemoryRepo) DeleteBid(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bids[id]; !ok {
		return fmt.Errorf("delete bid %s: %w", id, ledgererrors.ErrBidNotFound)
	}
	delete(r.bids, id)
	return nil
}

// AcceptBid marks the bid accepted and rejects every other pending bid on the
// same collection. The guard checks and all status flips happen under the
// write lock, so concurrent accepts of two bids on one collection can never
// both succeed, and no reader sees an accepted bid with its siblings still
// pending. Returns the accepted bid and the newly rejected bids.
func (r *MemoryRepo) AcceptBid(id string) (model.Bid, []model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bids[id]
	if !ok {
		return model.Bid{}, nil, fmt.Errorf("accept bid %s: %w", id, ledgererrors.ErrBidNotFound)
	}
	if b.Status != model.BidStatusPending {
		return model.Bid{}, nil, fmt.Errorf("accept bid %s: status is %s: %w", id, b.Status, ledgererrors.ErrBidNotPending)
	}
	if winner, found := r.acceptedBidLocked(b.CollectionID, id); found {
		return model.Bid{}, nil, fmt.Errorf("accept bid %s: bid %s already accepted: %w", id, winner.ID, ledgererrors.ErrCollectionAccepted)
	}

	now := time.Now().UTC()
	b.Status = model.BidStatusAccepted
	b.UpdatedAt = now
	r.bids[id] = b

	rejected := make([]model.Bid, 0)
	for sibID, sib := range r.bids {
		if sib.CollectionID == b.CollectionID && sib.ID != b.ID && sib.Status == model.BidStatusPending {
			sib.Status = model.BidStatusRejected
			sib.UpdatedAt = now
			r.bids[sibID] = sib
			rejected = append(rejected, sib)
		}
	}
	sortByCreatedAtDesc(rejected, func(bid model.Bid) (time.Time, string) { return bid.CreatedAt, bid.ID })

	return b, rejected, nil
}

// acceptedBidLocked returns the accepted bid on the collection, if any,
// ignoring excludeID. Callers must hold the lock.
func (r *MemoryRepo) acceptedBidLocked(collectionID, excludeID string) (model.Bid, bool) {
	for _, b := range r.bids {
		if b.CollectionID == collectionID && b.ID != excludeID && b.Status == model.BidStatusAccepted {
			return b, true
		}
	}
	return model.Bid{}, false
}

// sortByCreatedAtDesc orders entities newest first, breaking timestamp ties by
// id so listings are deterministic.
func sortByCreatedAtDesc[T any](items []T, key func(T) (time.Time, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi < idj
	})
}
