package helpers

import (
	model "collection-market/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type CreateCollectionRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	OwnerID     string          `json:"owner_id" binding:"required"`
}

type UpdateCollectionRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Stock       *int             `json:"stock"`
	Price       *decimal.Decimal `json:"price"`
}

// Patch converts the request into the model-level patch.
func (r UpdateCollectionRequest) Patch() model.CollectionPatch {
	return model.CollectionPatch{
		Name:        r.Name,
		Description: r.Description,
		Stock:       r.Stock,
		Price:       r.Price,
	}
}

// Price is a pointer so that a bid of zero survives the required check.
type CreateBidRequest struct {
	CollectionID string           `json:"collection_id" binding:"required"`
	UserID       string           `json:"user_id" binding:"required"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
}

type UpdateBidRequest struct {
	Price  *decimal.Decimal `json:"price"`
	Status *string          `json:"status"`
}

// Patch converts the request into the model-level patch.
func (r UpdateBidRequest) Patch() model.BidPatch {
	patch := model.BidPatch{Price: r.Price}
	if r.Status != nil {
		status := model.BidStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// AcceptBidResponse carries the accepted bid and the pending siblings this
// acceptance rejected.
type AcceptBidResponse struct {
	Bid          model.BidWithUser `json:"bid"`
	RejectedBids []model.Bid       `json:"rejected_bids"`
}
