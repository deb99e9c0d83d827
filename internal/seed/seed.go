// Package seed generates demo data for local runs and load tests: a fixed user
// directory plus randomized collections and bids. Everything goes through the
// store's insert paths, so the generated data can never violate the ledger
// invariants.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	model "collection-market/internal/models"
	"collection-market/internal/repository"
	"collection-market/utils"

	"github.com/shopspring/decimal"
)

var categories = []string{
	"Art", "Photography", "Digital Art", "Vintage Collectibles", "Sports Memorabilia",
	"Comic Books", "Trading Cards", "Antiques", "Rare Books", "Jewelry",
	"Watches", "Coins", "Stamps", "Music Memorabilia", "Movie Props",
}

var adjectives = []string{
	"Rare", "Vintage", "Limited Edition", "Authentic", "Premium",
	"Exclusive", "Collectible", "Historic", "Unique", "Original",
	"Certified", "Pristine", "Classic", "Legendary", "Iconic",
}

// Users returns the fixed demo user directory.
func Users() []model.User {
	return []model.User{
		{ID: "user-1", Name: "Alice Johnson", Email: "alice@example.com"},
		{ID: "user-2", Name: "Bob Smith", Email: "bob@example.com"},
		{ID: "user-3", Name: "Carol Davis", Email: "carol@example.com"},
		{ID: "user-4", Name: "David Wilson", Email: "david@example.com"},
		{ID: "user-5", Name: "Emma Brown", Email: "emma@example.com"},
		{ID: "user-6", Name: "Frank Miller", Email: "frank@example.com"},
		{ID: "user-7", Name: "Grace Taylor", Email: "grace@example.com"},
		{ID: "user-8", Name: "Henry Anderson", Email: "henry@example.com"},
		{ID: "user-9", Name: "Isabel Thomas", Email: "isabel@example.com"},
		{ID: "user-10", Name: "Jack Robinson", Email: "jack@example.com"},
		{ID: "user-11", Name: "Karen White", Email: "karen@example.com"},
		{ID: "user-12", Name: "Leo Martinez", Email: "leo@example.com"},
	}
}

// Populate fills the store with the user directory and numCollections
// randomized collections, each carrying a handful of bids.
func Populate(repo *repository.MemoryRepo, numCollections int) error {
	users := Users()
	for _, u := range users {
		repo.AddUser(u)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < numCollections; i++ {
		c := randomCollection(rng, users)
		if err := repo.InsertCollection(c); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if err := placeBids(rng, repo, c, users); err != nil {
			return err
		}
	}
	return nil
}

func randomCollection(rng *rand.Rand, users []model.User) model.Collection {
	adjective := adjectives[rng.Intn(len(adjectives))]
	category := categories[rng.Intn(len(categories))]
	createdAt := time.Now().UTC().Add(-time.Duration(30+rng.Intn(335)) * 24 * time.Hour)

	return model.Collection{
		ID:   utils.GenerateID(),
		Name: fmt.Sprintf("%s %s #%d", adjective, category, rng.Intn(1000)+1),
		Description: fmt.Sprintf("A beautiful %s %s piece from a private collection.",
			adjective, category),
		Stock:     rng.Intn(50) + 1,
		Price:     decimal.NewFromInt(int64(rng.Intn(10000) + 100)),
		OwnerID:   users[rng.Intn(len(users))].ID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// placeBids gives each chosen non-owner user at most one bid on the
// collection, mostly pending with the occasional rejected one.
func placeBids(rng *rand.Rand, repo *repository.MemoryRepo, c model.Collection, users []model.User) error {
	bidders := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.ID != c.OwnerID {
			bidders = append(bidders, u)
		}
	}
	rng.Shuffle(len(bidders), func(i, j int) { bidders[i], bidders[j] = bidders[j], bidders[i] })

	count := rng.Intn(6) + 5
	if count > len(bidders) {
		count = len(bidders)
	}

	for _, bidder := range bidders[:count] {
		// 70-130% of the asking price
		factor := decimal.NewFromFloat(0.7 + rng.Float64()*0.6)
		status := model.BidStatusPending
		if rng.Intn(5) == 0 {
			status = model.BidStatusRejected
		}
		createdAt := time.Now().UTC().Add(-time.Duration(rng.Intn(30*24)) * time.Hour)

		bid := model.Bid{
			ID:           utils.GenerateID(),
			CollectionID: c.ID,
			Price:        c.Price.Mul(factor).Round(2),
			UserID:       bidder.ID,
			Status:       status,
			CreatedAt:    createdAt,
			UpdatedAt:    createdAt,
		}
		if err := repo.InsertBid(bid); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}
