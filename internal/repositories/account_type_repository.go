package repositories

import (
	"errors"
	"fmt"

	"wallet-api/internal/models"

	"gorm.io/gorm"
)

var ErrAccountTypeNotFound = errors.New("account type not found")

// accountTypeRepository implements AccountTypeRepositoryInterface
type accountTypeRepository struct {
	db *gorm.DB
}

// NewAccountTypeRepository creates a new account type repository
func NewAccountTypeRepository(db *gorm.DB) AccountTypeRepositoryInterface {
	return &accountTypeRepository{db: db}
}

// GetByName retrieves an account type by its name
func (r *accountTypeRepository) GetByName(name string) (*models.AccountType, error) {
	var accountType models.AccountType
	if err := r.db.Where("name = ?", name).First(&accountType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountTypeNotFound
		}
		return nil, fmt.Errorf("failed to get account type: %w", err)
	}
	return &accountType, nil
}

// GetAll retrieves all account types
func (r *accountTypeRepository) GetAll() ([]models.AccountType, error) {
	var accountTypes []models.AccountType
	if err := r.db.Order("name").Find(&accountTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to get account types: %w", err)
	}
	return accountTypes, nil
}
