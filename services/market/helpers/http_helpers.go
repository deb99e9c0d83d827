package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"collection-market/internal/ledgererrors"
	"collection-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Every message names the entity or invariant that caused the failure.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, ledgererrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, ledgererrors.ErrCollectionNotFound):
		return http.StatusNotFound, "collection not found"
	case errors.Is(err, ledgererrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, ledgererrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, ledgererrors.ErrSelfBid):
		return http.StatusConflict, "owner cannot bid on own collection"
	case errors.Is(err, ledgererrors.ErrDuplicatePending):
		return http.StatusConflict, "duplicate pending bid"
	case errors.Is(err, ledgererrors.ErrBidNotPending):
		return http.StatusConflict, "bid is not pending"
	case errors.Is(err, ledgererrors.ErrCollectionAccepted):
		return http.StatusConflict, "collection already has an accepted bid"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
