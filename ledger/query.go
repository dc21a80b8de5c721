package ledger

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"stockcraft/models"
)

// DefaultOrderHistoryLimit caps OrderHistory when the caller passes no
// positive limit.
const DefaultOrderHistoryLimit = 20

// Queries is the read-only view over the ledger. Safe for any number of
// concurrent readers; nothing here mutates.
type Queries struct {
	store *Store
}

func NewQueries(store *Store) *Queries {
	return &Queries{store: store}
}

// Summary bundles a user's cash account with their positions.
type Summary struct {
	Account   models.CashAccount `json:"account"`
	Positions []models.Portfolio `json:"positions"`
}

// PortfolioSummary returns the user's account and positions ordered by
// stock id. A user with no account yet gets a zero-balance account that is
// not persisted.
func (q *Queries) PortfolioSummary(ctx context.Context, userID uint) (*Summary, error) {
	acct, err := q.store.AccountByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		acct = &models.CashAccount{UserID: userID, Balance: decimal.Zero}
	} else if err != nil {
		return nil, err
	}

	positions, err := q.store.PositionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Summary{Account: *acct, Positions: positions}, nil
}

// OrderHistory returns the user's most recent orders, newest first.
func (q *Queries) OrderHistory(ctx context.Context, userID uint, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = DefaultOrderHistoryLimit
	}
	return q.store.OrdersByUser(ctx, userID, limit)
}
