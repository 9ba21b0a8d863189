package repositories

import (
	"fmt"
	"time"

	"wallet-api/internal/models"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByAccountID retrieves all transactions belonging to an account
func (r *transactionRepository) GetByAccountID(accountID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("account_id = ?", accountID).
		Order("transaction_date DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for account: %w", err)
	}
	return transactions, nil
}

// ExistsByAccountIDAndDateAfter reports whether the account has any
// transaction dated strictly after the threshold.
func (r *transactionRepository) ExistsByAccountIDAndDateAfter(accountID uint, threshold time.Time) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("account_id = ? AND transaction_date > ?", accountID, threshold).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check recent transactions: %w", err)
	}
	return count > 0, nil
}
