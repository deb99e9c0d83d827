package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	ledger "collection-market/internal/ledgerService"
	model "collection-market/internal/models"
	"collection-market/internal/repository"
	"collection-market/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter wires the full stack over an in-memory store seeded with the
// given users.
func SetupTestRouter(users ...model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	for _, u := range users {
		repo.AddUser(u)
	}
	service := ledger.NewLedgerService(repo)
	return server.SetupRouter(service)
}

// testUsers returns three distinct users: an owner and two bidders.
func testUsers() (model.User, model.User, model.User) {
	u1 := model.User{ID: "u1", Name: "Alice Johnson", Email: "alice@example.com"}
	u2 := model.User{ID: "u2", Name: "Bob Smith", Email: "bob@example.com"}
	u3 := model.User{ID: "u3", Name: "Carol Davis", Email: "carol@example.com"}
	return u1, u2, u3
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// createCollection creates a collection through the API and returns its id.
func createCollection(t *testing.T, router *gin.Engine, ownerID string, price int) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/collections", map[string]any{
		"name":        fmt.Sprintf("Collection by %s", ownerID),
		"description": "integration test listing",
		"stock":       1,
		"price":       price,
		"owner_id":    ownerID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	return data["id"].(string)
}

// placeBid places a bid through the API and returns its id.
func placeBid(t *testing.T, router *gin.Engine, collectionID, userID string, price int) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", map[string]any{
		"collection_id": collectionID,
		"user_id":       userID,
		"price":         price,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	return data["id"].(string)
}
