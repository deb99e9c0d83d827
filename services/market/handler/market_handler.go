package handler

import (
	"fmt"
	"net/http"

	model "collection-market/internal/models"
	"collection-market/services/market/helpers"
	"collection-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=market_handler.go -destination=mock_service.go -package=handler

type LedgerServiceInterface interface {
	ListUsers() []model.User
	ListCollections() ([]model.CollectionWithBids, error)
	GetCollection(id string) (model.CollectionWithOwner, error)
	CreateCollection(name, description string, stock int, price decimal.Decimal, ownerID string) (model.CollectionWithOwner, error)
	UpdateCollection(id string, patch model.CollectionPatch) (model.CollectionWithOwner, error)
	DeleteCollection(id string) error
	ListBidsForCollection(collectionID string) ([]model.BidWithUser, error)
	CreateBid(collectionID, userID string, price decimal.Decimal) (model.BidWithUser, error)
	GetBid(id string) (model.BidWithUser, error)
	UpdateBid(id string, patch model.BidPatch) (model.BidWithUser, error)
	DeleteBid(id string) error
	AcceptBid(id string) (model.BidWithUser, []model.Bid, error)
}

type MarketHandler struct {
	service LedgerServiceInterface
}

func NewMarketHandler(service LedgerServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// respondError maps the error, sends the JSON error body and logs it.
func (h *MarketHandler) respondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	ctx["error"] = err.Error()
	utils.Warn(handlerName+": "+message, ctx)
}

// ListUsersHandler handles GET /users
func (h *MarketHandler) ListUsersHandler(c *gin.Context) {
	users := h.service.ListUsers()
	utils.JSONResponse(c, http.StatusOK, users, "users retrieved successfully")
}

// ListCollectionsHandler handles GET /collections
func (h *MarketHandler) ListCollectionsHandler(c *gin.Context) {
	collections, err := h.service.ListCollections()
	if err != nil {
		h.respondError(c, "ListCollectionsHandler", err, map[string]any{})
		return
	}

	utils.JSONResponse(c, http.StatusOK, collections, "collections retrieved successfully")
	helpers.LogSuccess("ListCollectionsHandler", "collections retrieved successfully", map[string]any{
		"count": len(collections),
	})
}

// GetCollectionHandler handles GET /collections/:id
func (h *MarketHandler) GetCollectionHandler(c *gin.Context) {
	id := c.Param("id")
	collection, err := h.service.GetCollection(id)
	if err != nil {
		h.respondError(c, "GetCollectionHandler", err, map[string]any{"collection_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, collection, "collection retrieved successfully")
}

// CreateCollectionHandler handles POST /collections
func (h *MarketHandler) CreateCollectionHandler(c *gin.Context) {
	var req helpers.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCollectionHandler", err)
		return
	}

	collection, err := h.service.CreateCollection(req.Name, req.Description, req.Stock, req.Price, req.OwnerID)
	if err != nil {
		h.respondError(c, "CreateCollectionHandler", err, map[string]any{
			"name":     req.Name,
			"owner_id": req.OwnerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, collection, "collection created successfully")
	helpers.LogSuccess("CreateCollectionHandler", "collection created successfully", map[string]any{
		"collection_id": collection.ID,
		"owner_id":      collection.OwnerID,
	})
}

// UpdateCollectionHandler handles PUT /collections/:id
func (h *MarketHandler) UpdateCollectionHandler(c *gin.Context) {
	id := c.Param("id")

	var req helpers.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCollectionHandler", err)
		return
	}

	collection, err := h.service.UpdateCollection(id, req.Patch())
	if err != nil {
		h.respondError(c, "UpdateCollectionHandler", err, map[string]any{"collection_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, collection, "collection updated successfully")
	helpers.LogSuccess("UpdateCollectionHandler", "collection updated successfully", map[string]any{
		"collection_id": collection.ID,
	})
}

// DeleteCollectionHandler handles DELETE /collections/:id
func (h *MarketHandler) DeleteCollectionHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteCollection(id); err != nil {
		h.respondError(c, "DeleteCollectionHandler", err, map[string]any{"collection_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "collection deleted successfully")
	helpers.LogSuccess("DeleteCollectionHandler", "collection deleted successfully", map[string]any{
		"collection_id": id,
	})
}

// ListBidsHandler handles GET /bids?collection_id=...
func (h *MarketHandler) ListBidsHandler(c *gin.Context) {
	collectionID := c.Query("collection_id")

	bids, err := h.service.ListBidsForCollection(collectionID)
	if err != nil {
		h.respondError(c, "ListBidsHandler", err, map[string]any{"collection_id": collectionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{
		"collection_id": collectionID,
		"count":         len(bids),
	})
}

// CreateBidHandler handles POST /bids
func (h *MarketHandler) CreateBidHandler(c *gin.Context) {
	var req helpers.CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBidHandler", err)
		return
	}

	bid, err := h.service.CreateBid(req.CollectionID, req.UserID, *req.Price)
	if err != nil {
		h.respondError(c, "CreateBidHandler", err, map[string]any{
			"collection_id": req.CollectionID,
			"user_id":       req.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bid, "bid created successfully")
	helpers.LogSuccess("CreateBidHandler", "bid created successfully", map[string]any{
		"bid_id":        bid.ID,
		"collection_id": bid.CollectionID,
		"user_id":       bid.UserID,
		"price":         bid.Price.String(),
	})
}

// GetBidHandler handles GET /bids/:id
func (h *MarketHandler) GetBidHandler(c *gin.Context) {
	id := c.Param("id")
	bid, err := h.service.GetBid(id)
	if err != nil {
		h.respondError(c, "GetBidHandler", err, map[string]any{"bid_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "bid retrieved successfully")
}

// UpdateBidHandler handles PUT /bids/:id
func (h *MarketHandler) UpdateBidHandler(c *gin.Context) {
	id := c.Param("id")

	var req helpers.UpdateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidHandler", err)
		return
	}

	bid, err := h.service.UpdateBid(id, req.Patch())
	if err != nil {
		h.respondError(c, "UpdateBidHandler", err, map[string]any{"bid_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bid, "bid updated successfully")
	helpers.LogSuccess("UpdateBidHandler", "bid updated successfully", map[string]any{
		"bid_id": bid.ID,
		"status": string(bid.Status),
	})
}

// DeleteBidHandler handles DELETE /bids/:id
func (h *MarketHandler) DeleteBidHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteBid(id); err != nil {
		h.respondError(c, "DeleteBidHandler", err, map[string]any{"bid_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid deleted successfully")
	helpers.LogSuccess("DeleteBidHandler", "bid deleted successfully", map[string]any{
		"bid_id": id,
	})
}

// AcceptBidHandler handles POST /bids/:id/accept
func (h *MarketHandler) AcceptBidHandler(c *gin.Context) {
	id := c.Param("id")

	accepted, rejected, err := h.service.AcceptBid(id)
	if err != nil {
		h.respondError(c, "AcceptBidHandler", err, map[string]any{"bid_id": id})
		return
	}

	resp := helpers.AcceptBidResponse{
		Bid:          accepted,
		RejectedBids: rejected,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid accepted successfully, other pending bids rejected")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted successfully", map[string]any{
		"bid_id":        accepted.ID,
		"collection_id": accepted.CollectionID,
		"user_id":       accepted.UserID,
		"rejected":      len(rejected),
	})
}
