package repositories

import (
	"errors"
	"fmt"

	"wallet-api/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateAlias  = errors.New("alias already exists")
	ErrDuplicateCBU    = errors.New("CBU already exists")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{db: db}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAlias
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID with its account type preloaded
func (r *accountRepository) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.Preload("AccountType").First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByUserID retrieves all accounts owned by a user
func (r *accountRepository) GetByUserID(userID uint) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Preload("AccountType").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

// GetAll retrieves every account
func (r *accountRepository) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Preload("AccountType").
		Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// Update updates an account
func (r *accountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAlias
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// Delete soft deletes an account
func (r *accountRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Account{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ExistsByID checks whether an account with the given ID exists
func (r *accountRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}

// ExistsByAlias checks whether an account with the given alias exists
func (r *accountRepository) ExistsByAlias(alias string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).Where("alias = ?", alias).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check alias existence: %w", err)
	}
	return count > 0, nil
}

// ExistsByCBU checks whether an account with the given CBU exists
func (r *accountRepository) ExistsByCBU(cbu string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Account{}).Where("cbu = ?", cbu).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check CBU existence: %w", err)
	}
	return count > 0, nil
}
