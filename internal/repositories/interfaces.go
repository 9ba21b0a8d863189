package repositories

import (
	"time"

	"wallet-api/internal/models"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uint) (*models.Account, error)
	GetByUserID(userID uint) ([]models.Account, error)
	GetAll() ([]models.Account, error)
	Update(account *models.Account) error
	Delete(id uint) error
	ExistsByID(id uint) (bool, error)
	ExistsByAlias(alias string) (bool, error)
	ExistsByCBU(cbu string) (bool, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// AccountTypeRepositoryInterface defines the contract for account type repository operations
type AccountTypeRepositoryInterface interface {
	GetByName(name string) (*models.AccountType, error)
	GetAll() ([]models.AccountType, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByAccountID(accountID uint) ([]models.Transaction, error)
	ExistsByAccountIDAndDateAfter(accountID uint, threshold time.Time) (bool, error)
}

// FinancerProductRepositoryInterface defines the contract for financer product repository operations
type FinancerProductRepositoryInterface interface {
	Create(product *models.FinancerProduct) error
	GetByAccountID(accountID uint) ([]models.FinancerProduct, error)
}
