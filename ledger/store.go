package ledger

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockcraft/models"
)

// Store is the repository layer over the relational schema. Write methods
// never commit on their own; the engine wraps each compound mutation in one
// Transaction scope so concurrent requests against the same account or
// position serialize on row locks.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn against a store bound to a single database
// transaction. A non-nil return from fn rolls back every write made
// through that store.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
	return classify(err)
}

// forUpdate takes a row-level write lock on dialects that support it.
// SQLite has no FOR UPDATE; its single writer serializes transactions anyway.
func (s *Store) forUpdate(db *gorm.DB) *gorm.DB {
	if s.db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// AccountByUser returns the user's cash account, ErrNotFound if none exists.
func (s *Store) AccountByUser(ctx context.Context, userID uint) (*models.CashAccount, error) {
	var acct models.CashAccount
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&acct).Error
	if err != nil {
		return nil, classify(err)
	}
	return &acct, nil
}

// AccountByUserForUpdate is AccountByUser with a row-level write lock. Only
// meaningful inside a Transaction scope.
func (s *Store) AccountByUserForUpdate(ctx context.Context, userID uint) (*models.CashAccount, error) {
	var acct models.CashAccount
	err := s.forUpdate(s.db.WithContext(ctx)).
		Where("user_id = ?", userID).First(&acct).Error
	if err != nil {
		return nil, classify(err)
	}
	return &acct, nil
}

func (s *Store) CreateAccount(ctx context.Context, acct *models.CashAccount) error {
	return classify(s.db.WithContext(ctx).Create(acct).Error)
}

func (s *Store) SaveAccount(ctx context.Context, acct *models.CashAccount) error {
	return classify(s.db.WithContext(ctx).Save(acct).Error)
}

func (s *Store) StockByID(ctx context.Context, stockID uint) (*models.Stock, error) {
	var stock models.Stock
	if err := s.db.WithContext(ctx).First(&stock, stockID).Error; err != nil {
		return nil, classify(err)
	}
	return &stock, nil
}

func (s *Store) PositionByUserAndStock(ctx context.Context, userID, stockID uint) (*models.Portfolio, error) {
	var pos models.Portfolio
	err := s.db.WithContext(ctx).Where("user_id = ? AND stock_id = ?", userID, stockID).First(&pos).Error
	if err != nil {
		return nil, classify(err)
	}
	return &pos, nil
}

// PositionByUserAndStockForUpdate locks the position row for the enclosing
// transaction.
func (s *Store) PositionByUserAndStockForUpdate(ctx context.Context, userID, stockID uint) (*models.Portfolio, error) {
	var pos models.Portfolio
	err := s.forUpdate(s.db.WithContext(ctx)).
		Where("user_id = ? AND stock_id = ?", userID, stockID).First(&pos).Error
	if err != nil {
		return nil, classify(err)
	}
	return &pos, nil
}

func (s *Store) PositionByID(ctx context.Context, portfolioID uint) (*models.Portfolio, error) {
	var pos models.Portfolio
	if err := s.db.WithContext(ctx).First(&pos, portfolioID).Error; err != nil {
		return nil, classify(err)
	}
	return &pos, nil
}

func (s *Store) PositionsByUser(ctx context.Context, userID uint) ([]models.Portfolio, error) {
	var positions []models.Portfolio
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("stock_id ASC").Find(&positions).Error
	if err != nil {
		return nil, classify(err)
	}
	return positions, nil
}

func (s *Store) CreatePosition(ctx context.Context, pos *models.Portfolio) error {
	return classify(s.db.WithContext(ctx).Create(pos).Error)
}

func (s *Store) SavePosition(ctx context.Context, pos *models.Portfolio) error {
	return classify(s.db.WithContext(ctx).Save(pos).Error)
}

// DeletePosition removes the row outright. Hard delete: a soft-deleted row
// would keep holding the (user, stock) unique slot.
func (s *Store) DeletePosition(ctx context.Context, pos *models.Portfolio) error {
	return classify(s.db.WithContext(ctx).Unscoped().Delete(pos).Error)
}

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	return classify(s.db.WithContext(ctx).Create(order).Error)
}

func (s *Store) OrderByID(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, orderID).Error; err != nil {
		return nil, classify(err)
	}
	return &order, nil
}

func (s *Store) OrdersByUser(ctx context.Context, userID uint, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).Find(&orders).Error
	if err != nil {
		return nil, classify(err)
	}
	return orders, nil
}

func (s *Store) DeleteOrder(ctx context.Context, order *models.Order) error {
	return classify(s.db.WithContext(ctx).Unscoped().Delete(order).Error)
}

func (s *Store) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	return classify(s.db.WithContext(ctx).Create(txn).Error)
}

// DeleteTransactionsByOrder removes the audit rows linked to an order, so
// cancellation leaves nothing referencing the deleted order id.
func (s *Store) DeleteTransactionsByOrder(ctx context.Context, orderID uint) error {
	return classify(s.db.WithContext(ctx).Unscoped().
		Where("order_id = ?", orderID).Delete(&models.Transaction{}).Error)
}
