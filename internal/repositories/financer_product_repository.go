package repositories

import (
	"fmt"

	"wallet-api/internal/models"

	"gorm.io/gorm"
)

// financerProductRepository implements FinancerProductRepositoryInterface
type financerProductRepository struct {
	db *gorm.DB
}

// NewFinancerProductRepository creates a new financer product repository
func NewFinancerProductRepository(db *gorm.DB) FinancerProductRepositoryInterface {
	return &financerProductRepository{db: db}
}

// Create creates a new financer product
func (r *financerProductRepository) Create(product *models.FinancerProduct) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create financer product: %w", err)
	}
	return nil
}

// GetByAccountID retrieves all financer products linked to an account
func (r *financerProductRepository) GetByAccountID(accountID uint) ([]models.FinancerProduct, error) {
	var products []models.FinancerProduct
	if err := r.db.Where("account_id = ?", accountID).
		Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get financer products for account: %w", err)
	}
	return products, nil
}
