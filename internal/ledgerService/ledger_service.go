package ledger

import (
	"fmt"
	"time"

	"collection-market/internal/ledgererrors"
	"collection-market/internal/models"
	"collection-market/internal/repository"
	"collection-market/utils"

	"github.com/shopspring/decimal"
)

// LedgerService implements the marketplace business rules on top of a
// LedgerStore: input validation, id and timestamp stamping, and joining
// entities with the user directory. Invariants that depend on current ledger
// state are enforced by the store itself, under its lock.
type LedgerService struct {
	repo repository.LedgerStore
}

// NewLedgerService creates a new LedgerService instance.
func NewLedgerService(repo repository.LedgerStore) *LedgerService {
	return &LedgerService{
		repo: repo,
	}
}

// ListUsers returns the user directory.
func (s *LedgerService) ListUsers() []models.User {
	return s.repo.ListUsers()
}

// ListCollections returns every collection, newest first, joined with its
// owner and its bids.
func (s *LedgerService) ListCollections() ([]models.CollectionWithBids, error) {
	collections := s.repo.ListCollections()

	result := make([]models.CollectionWithBids, 0, len(collections))
	for _, c := range collections {
		owner, err := s.repo.GetUser(c.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to resolve owner of collection %s: %w", c.ID, err)
		}
		bids, err := s.joinBids(s.repo.ListBidsByCollection(c.ID))
		if err != nil {
			return nil, fmt.Errorf("service: failed to resolve bidders for collection %s: %w", c.ID, err)
		}
		result = append(result, models.CollectionWithBids{Collection: c, Bids: bids, Owner: owner})
	}
	return result, nil
}

// GetCollection returns one collection joined with its owner.
func (s *LedgerService) GetCollection(id string) (models.CollectionWithOwner, error) {
	if id == "" {
		return models.CollectionWithOwner{}, fmt.Errorf("service: %w - missing collection ID", ledgererrors.ErrInvalidInput)
	}

	c, err := s.repo.GetCollection(id)
	if err != nil {
		return models.CollectionWithOwner{}, fmt.Errorf("service: failed to get collection %s: %w", id, err)
	}
	return s.joinOwner(c)
}

// CreateCollection validates and stores a new collection. Stock defaults to 1
// when non-positive; an unset price is the zero decimal.
func (s *LedgerService) CreateCollection(name, description string, stock int, price decimal.Decimal, ownerID string) (models.CollectionWithOwner, error) {
	if name == "" || description == "" || ownerID == "" {
		return models.CollectionWithOwner{}, fmt.Errorf("service: %w - name, description and owner_id are required", ledgererrors.ErrInvalidInput)
	}
	if price.IsNegative() {
		return models.CollectionWithOwner{}, fmt.Errorf("service: %w - negative price", ledgererrors.ErrInvalidInput)
	}
	if stock <= 0 {
		stock = 1
	}

	now := time.Now().UTC()
	c := models.Collection{
		ID:          utils.GenerateID(),
		Name:        name,
		Description: description,
		Stock:       stock,
		Price:       price,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.InsertCollection(c); err != nil {
		return models.CollectionWithOwner{}, fmt.Errorf("service: failed to create collection: %w", err)
	}
	return s.joinOwner(c)
}

// UpdateCollection merges the patch into the collection.
func (s *LedgerService) UpdateCollection(id string, patch models.CollectionPatch) (models.CollectionWithOwner, error) {
	if id == "" {
		return models.CollectionWithOwner{}, fmt.Errorf("service: %w - missing collection ID", ledgererrors.ErrInvalidInput)
	}
	if patch.Name != nil && *patch.Name == "" {
		return models.CollectionWithOwner{}, fmt.Errorf("service: %w - name cannot be empty", ledgererrors.ErrInvalidInput)
	}
	if patch.Description != nil && *patch.Description == "" {
		return models.CollectionWithOwner{}, fmt.Errorf("service: %w - description cannot be empty", ledgererrors.ErrInvalidInput)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return models.CollectionWithOwner{}, fmt.Errorf("service: %w - negative stock", ledgererrors.ErrInvalidInput)
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return models.CollectionWithOwner{}, fmt.Errorf("service: %w - negative price", ledgererrors.ErrInvalidInput)
	}

	c, err := s.repo.UpdateCollection(id, patch)
	if err != nil {
		return models.CollectionWithOwner{}, fmt.Errorf("service: failed to update collection %s: %w", id, err)
	}
	return s.joinOwner(c)
}

// DeleteCollection removes a collection and all of its bids.
func (s *LedgerService) DeleteCollection(id string) error {
	if id == "" {
		return fmt.Errorf("service: %w - missing collection ID", ledgererrors.ErrInvalidInput)
	}
	if err := s.repo.DeleteCollection(id); err != nil {
		return fmt.Errorf("service: failed to delete collection %s: %w", id, err)
	}
	return nil
}

// ListBidsForCollection returns the collection's bids, newest first, joined
// with their bidders.
func (s *LedgerService) ListBidsForCollection(collectionID string) ([]models.BidWithUser, error) {
	if collectionID == "" {
		return nil, fmt.Errorf("service: %w - missing collection ID", ledgererrors.ErrInvalidInput)
	}

	bids, err := s.joinBids(s.repo.ListBidsByCollection(collectionID))
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve bidders for collection %s: %w", collectionID, err)
	}
	return bids, nil
}

// CreateBid validates and records a new pending bid.
func (s *LedgerService) CreateBid(collectionID, userID string, price decimal.Decimal) (models.BidWithUser, error) {
	if collectionID == "" || userID == "" {
		return models.BidWithUser{}, fmt.Errorf("service: %w - collection_id and user_id are required", ledgererrors.ErrInvalidInput)
	}
	if price.IsNegative() {
		return models.BidWithUser{}, fmt.Errorf("service: %w - negative price", ledgererrors.ErrInvalidInput)
	}

	now := time.Now().UTC()
	bid := models.Bid{
		ID:           utils.GenerateID(),
		CollectionID: collectionID,
		Price:        price,
		UserID:       userID,
		Status:       models.BidStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.InsertBid(bid); err != nil {
		return models.BidWithUser{}, fmt.Errorf("service: failed to record bid for collection %s by user %s: %w", collectionID, userID, err)
	}
	return s.joinBid(bid)
}

// GetBid returns one bid joined with its bidder.
func (s *LedgerService) GetBid(id string) (models.BidWithUser, error) {
	if id == "" {
		return models.BidWithUser{}, fmt.Errorf("service: %w - missing bid ID", ledgererrors.ErrInvalidInput)
	}

	bid, err := s.repo.GetBid(id)
	if err != nil {
		return models.BidWithUser{}, fmt.Errorf("service: failed to get bid %s: %w", id, err)
	}
	return s.joinBid(bid)
}

// UpdateBid merges the patch into the bid. Status edits are validated here for
// shape and by the store for state-machine legality; this path never rejects
// sibling bids, that is AcceptBid's job.
func (s *LedgerService) UpdateBid(id string, patch models.BidPatch) (models.BidWithUser, error) {
	if id == "" {
		return models.BidWithUser{}, fmt.Errorf("service: %w - missing bid ID", ledgererrors.ErrInvalidInput)
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return models.BidWithUser{}, fmt.Errorf("service: %w - negative price", ledgererrors.ErrInvalidInput)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return models.BidWithUser{}, fmt.Errorf("service: %w - unknown bid status %q", ledgererrors.ErrInvalidInput, *patch.Status)
	}

	bid, err := s.repo.UpdateBid(id, patch)
	if err != nil {
		return models.BidWithUser{}, fmt.Errorf("service: failed to update bid %s: %w", id, err)
	}
	return s.joinBid(bid)
}

// DeleteBid removes a bid.
func (s *LedgerService) DeleteBid(id string) error {
	if id == "" {
		return fmt.Errorf("service: %w - missing bid ID", ledgererrors.ErrInvalidInput)
	}
	if err := s.repo.DeleteBid(id); err != nil {
		return fmt.Errorf("service: failed to delete bid %s: %w", id, err)
	}
	return nil
}

// AcceptBid accepts the bid and rejects every other pending bid on the same
// collection in one atomic transition. Returns the accepted bid joined with
// its bidder and the bids rejected by this call.
func (s *LedgerService) AcceptBid(id string) (models.BidWithUser, []models.Bid, error) {
	if id == "" {
		return models.BidWithUser{}, nil, fmt.Errorf("service: %w - missing bid ID", ledgererrors.ErrInvalidInput)
	}

	accepted, rejected, err := s.repo.AcceptBid(id)
	if err != nil {
		return models.BidWithUser{}, nil, fmt.Errorf("service: failed to accept bid %s: %w", id, err)
	}

	joined, err := s.joinBid(accepted)
	if err != nil {
		return models.BidWithUser{}, nil, err
	}
	return joined, rejected, nil
}

// joinOwner attaches the owning user to a collection.
func (s *LedgerService) joinOwner(c models.Collection) (models.CollectionWithOwner, error) {
	owner, err := s.repo.GetUser(c.OwnerID)
	if err != nil {
		return models.CollectionWithOwner{}, fmt.Errorf("service: failed to resolve owner of collection %s: %w", c.ID, err)
	}
	return models.CollectionWithOwner{Collection: c, Owner: owner}, nil
}

// joinBid attaches the bidder to a bid.
func (s *LedgerService) joinBid(b models.Bid) (models.BidWithUser, error) {
	user, err := s.repo.GetUser(b.UserID)
	if err != nil {
		return models.BidWithUser{}, fmt.Errorf("service: failed to resolve bidder of bid %s: %w", b.ID, err)
	}
	return models.BidWithUser{Bid: b, User: user}, nil
}

// joinBids attaches bidders to a list of bids.
func (s *LedgerService) joinBids(bids []models.Bid) ([]models.BidWithUser, error) {
	joined := make([]models.BidWithUser, 0, len(bids))
	for _, b := range bids {
		bu, err := s.joinBid(b)
		if err != nil {
			return nil, err
		}
		joined = append(joined, bu)
	}
	return joined, nil
}
