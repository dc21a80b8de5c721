package ledger

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"stockcraft/models"
)

// Engine enforces the cash and position invariants. Every mutating call
// takes the acting user explicitly and runs inside a single store
// transaction, so either every row involved commits or none does. The
// engine performs no authorization; callers supply an authenticated userID.
type Engine struct {
	store *Store
}

func NewEngine(store *Store) *Engine {
	return &Engine{store: store}
}

// validAmount accepts positive amounts with at most two fractional digits.
func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}

// Deposit adds amount to the user's cash account, creating the account on
// first deposit. Repeating the call deposits again; there is no
// deduplication. Returns the account after the credit.
func (e *Engine) Deposit(ctx context.Context, userID uint, amount decimal.Decimal) (*models.CashAccount, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}

	var acct *models.CashAccount
	err := e.store.Transaction(ctx, func(tx *Store) error {
		existing, err := tx.AccountByUserForUpdate(ctx, userID)
		if errors.Is(err, ErrNotFound) {
			acct = &models.CashAccount{UserID: userID, Balance: amount}
			return tx.CreateAccount(ctx, acct)
		}
		if err != nil {
			return err
		}
		existing.Balance = existing.Balance.Add(amount)
		acct = existing
		return tx.SaveAccount(ctx, existing)
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}

// Withdraw debits amount from the user's cash account. Fails with
// ErrInsufficientFunds when the balance (zero if no account exists) cannot
// cover it, leaving the balance untouched.
func (e *Engine) Withdraw(ctx context.Context, userID uint, amount decimal.Decimal) (*models.CashAccount, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}

	var acct *models.CashAccount
	err := e.store.Transaction(ctx, func(tx *Store) error {
		existing, err := tx.AccountByUserForUpdate(ctx, userID)
		if errors.Is(err, ErrNotFound) {
			return ErrInsufficientFunds
		}
		if err != nil {
			return err
		}
		if existing.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}
		existing.Balance = existing.Balance.Sub(amount)
		acct = existing
		return tx.SaveAccount(ctx, existing)
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}

// PlaceOrder records an order for one unit of the stock together with its
// audit transaction row. The stock must exist. Placement moves no cash and
// no position quantity.
func (e *Engine) PlaceOrder(ctx context.Context, userID, stockID uint) (*models.Order, error) {
	var order *models.Order
	err := e.store.Transaction(ctx, func(tx *Store) error {
		if _, err := tx.StockByID(ctx, stockID); err != nil {
			return err
		}
		order = &models.Order{UserID: userID, StockID: stockID}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}
		txn := &models.Transaction{OrderID: order.ID, UserID: userID, StockID: stockID}
		return tx.CreateTransaction(ctx, txn)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CancelOrder removes an order and its linked transaction rows. After a
// place/cancel round trip both tables are back to their prior row counts.
func (e *Engine) CancelOrder(ctx context.Context, orderID uint) error {
	return e.store.Transaction(ctx, func(tx *Store) error {
		order, err := tx.OrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := tx.DeleteTransactionsByOrder(ctx, order.ID); err != nil {
			return err
		}
		return tx.DeleteOrder(ctx, order)
	})
}

// AdjustPosition applies a signed quantity delta to the user's position in
// a stock, creating the row when a positive delta targets a stock the user
// does not yet hold. A delta that would take the quantity below zero fails
// with ErrInvalidQuantity and changes nothing. Rows that reach quantity
// zero are retained until DeletePosition removes them.
func (e *Engine) AdjustPosition(ctx context.Context, userID, stockID uint, delta int) (*models.Portfolio, error) {
	var pos *models.Portfolio
	err := e.store.Transaction(ctx, func(tx *Store) error {
		if _, err := tx.StockByID(ctx, stockID); err != nil {
			return err
		}
		existing, err := tx.PositionByUserAndStockForUpdate(ctx, userID, stockID)
		if errors.Is(err, ErrNotFound) {
			if delta <= 0 {
				return ErrInvalidQuantity
			}
			pos = &models.Portfolio{UserID: userID, StockID: stockID, Quantity: delta}
			return tx.CreatePosition(ctx, pos)
		}
		if err != nil {
			return err
		}
		if existing.Quantity+delta < 0 {
			return ErrInvalidQuantity
		}
		existing.Quantity += delta
		pos = existing
		return tx.SavePosition(ctx, existing)
	})
	if err != nil {
		return nil, err
	}
	return pos, nil
}

// DeletePosition removes a position row by its id regardless of quantity.
func (e *Engine) DeletePosition(ctx context.Context, portfolioID uint) error {
	return e.store.Transaction(ctx, func(tx *Store) error {
		pos, err := tx.PositionByID(ctx, portfolioID)
		if err != nil {
			return err
		}
		return tx.DeletePosition(ctx, pos)
	})
}
