package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wallet-api/internal/generator"
	"wallet-api/internal/models"
	"wallet-api/internal/repositories"

	"github.com/shopspring/decimal"
)

// maxGenerateAttempts bounds the regenerate-on-collision loop for aliases
// and CBUs.
const maxGenerateAttempts = 5

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAccountTypeNotFound = errors.New("account type not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrNoAccounts          = errors.New("no accounts found")
	ErrNoAccountsForUser   = errors.New("no accounts found for user")
	ErrNoTransactions      = errors.New("no transactions found for account")
	ErrNoFinancerProducts  = errors.New("no financer products found for account")
	ErrAliasGeneration     = errors.New("could not generate a unique alias")
	ErrCBUGeneration       = errors.New("could not generate a unique CBU")
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo     repositories.AccountRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	accountTypeRepo repositories.AccountTypeRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	productRepo     repositories.FinancerProductRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAccountService creates the account lifecycle service
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	accountTypeRepo repositories.AccountTypeRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	productRepo repositories.FinancerProductRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo:     accountRepo,
		userRepo:        userRepo,
		accountTypeRepo: accountTypeRepo,
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetAccountByID retrieves an account by ID
func (s *accountService) GetAccountByID(id uint) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetUserAccounts retrieves all accounts owned by a user
func (s *accountService) GetUserAccounts(userID uint, policy ListPolicy) ([]models.Account, error) {
	accounts, err := s.accountRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user accounts: %w", err)
	}

	if len(accounts) == 0 && policy == FailOnEmpty {
		return nil, ErrNoAccountsForUser
	}

	return accounts, nil
}

// GetAllAccounts retrieves every account, each annotated with its derived
// activity status. Only this bulk path attaches status.
func (s *accountService) GetAllAccounts(policy ListPolicy) ([]AccountWithStatus, error) {
	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get all accounts: %w", err)
	}

	if len(accounts) == 0 && policy == FailOnEmpty {
		return nil, ErrNoAccounts
	}

	annotated := make([]AccountWithStatus, len(accounts))
	for i, account := range accounts {
		status, err := s.AccountStatus(account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate status for account %d: %w", account.ID, err)
		}
		annotated[i] = AccountWithStatus{Account: account, Status: status}
	}

	return annotated, nil
}

// CreateAccount validates the user and account type references, assigns the
// generated identifiers, and persists a new account with zero balance.
func (s *accountService) CreateAccount(input CreateAccountInput) (*models.Account, error) {
	start := time.Now()

	_, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	accountType, err := s.accountTypeRepo.GetByName(input.AccountType)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountTypeNotFound) {
			return nil, ErrAccountTypeNotFound
		}
		return nil, fmt.Errorf("failed to verify account type: %w", err)
	}

	alias, err := s.generateUniqueAlias()
	if err != nil {
		return nil, err
	}

	cbu, err := s.generateUniqueCBU()
	if err != nil {
		return nil, err
	}

	creationDate := time.Now()
	if input.CreationDate != nil {
		creationDate = *input.CreationDate
	}

	account := &models.Account{
		UserID:        input.UserID,
		AccountTypeID: accountType.ID,
		Currency:      input.Currency,
		Name:          models.BuildAccountName(accountType.Name, input.Currency),
		Balance:       decimal.Zero,
		Alias:         alias,
		CBU:           cbu,
		CreationDate:  creationDate,
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	account.AccountType = *accountType

	s.metrics.RecordAccountCreated(accountType.Name)
	s.metrics.RecordOperationDuration("create", time.Since(start))
	s.logger.Info("account created",
		"account_id", account.ID,
		"user_id", account.UserID,
		"account_type", accountType.Name,
		"alias", account.Alias,
	)

	return account, nil
}

// EditAccount applies a partial update to an account. Only the patch fields
// that are present are written; everything else keeps its stored value.
func (s *accountService) EditAccount(id uint, patch AccountPatch) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if patch.CBU != nil {
		account.CBU = *patch.CBU
	}
	if patch.Alias != nil {
		account.Alias = *patch.Alias
	}
	if patch.Currency != nil {
		account.Currency = *patch.Currency
	}
	if patch.AccountType != nil {
		accountType, err := s.accountTypeRepo.GetByName(*patch.AccountType)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountTypeNotFound) {
				return nil, ErrAccountTypeNotFound
			}
			return nil, fmt.Errorf("failed to verify account type: %w", err)
		}
		account.AccountTypeID = accountType.ID
		account.AccountType = *accountType
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.logger.Info("account updated", "account_id", account.ID)

	return account, nil
}

// DeleteAccount removes an account by ID
func (s *accountService) DeleteAccount(id uint) error {
	exists, err := s.accountRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check account existence: %w", err)
	}
	if !exists {
		return ErrAccountNotFound
	}

	if err := s.accountRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.metrics.RecordAccountDeleted()
	s.logger.Info("account deleted", "account_id", id)

	return nil
}

// GetAccountTransactions lists the transactions belonging to an account
func (s *accountService) GetAccountTransactions(accountID uint, policy ListPolicy) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetByAccountID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	if len(transactions) == 0 && policy == FailOnEmpty {
		return nil, ErrNoTransactions
	}

	return transactions, nil
}

// GetAccountFinancerProducts lists the financer products linked to an account
func (s *accountService) GetAccountFinancerProducts(accountID uint, policy ListPolicy) ([]models.FinancerProduct, error) {
	products, err := s.productRepo.GetByAccountID(accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get financer products: %w", err)
	}

	if len(products) == 0 && policy == FailOnEmpty {
		return nil, ErrNoFinancerProducts
	}

	return products, nil
}

// AccountStatus derives the activity state of an account: active when any
// transaction is dated strictly after one calendar month before now,
// inactive otherwise. The result is recomputed on every call and never
// persisted.
func (s *accountService) AccountStatus(accountID uint) (string, error) {
	threshold := time.Now().AddDate(0, -1, 0)

	hasRecent, err := s.transactionRepo.ExistsByAccountIDAndDateAfter(accountID, threshold)
	if err != nil {
		return "", fmt.Errorf("failed to check account activity: %w", err)
	}

	status := models.AccountStatusInactive
	if hasRecent {
		status = models.AccountStatusActive
	}

	s.metrics.RecordStatusEvaluation(status)

	return status, nil
}

// generateUniqueAlias draws aliases until one is unused, bounded by
// maxGenerateAttempts.
func (s *accountService) generateUniqueAlias() (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		alias := generator.GenerateAlias()

		exists, err := s.accountRepo.ExistsByAlias(alias)
		if err != nil {
			return "", fmt.Errorf("failed to check alias uniqueness: %w", err)
		}
		if !exists {
			return alias, nil
		}

		s.logger.Warn("alias collision, regenerating", "alias", alias, "attempt", attempt+1)
	}

	return "", ErrAliasGeneration
}

// generateUniqueCBU draws CBUs until one is unused, bounded by
// maxGenerateAttempts.
func (s *accountService) generateUniqueCBU() (string, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		cbu := generator.GenerateCBU()

		exists, err := s.accountRepo.ExistsByCBU(cbu)
		if err != nil {
			return "", fmt.Errorf("failed to check CBU uniqueness: %w", err)
		}
		if !exists {
			return cbu, nil
		}

		s.logger.Warn("CBU collision, regenerating", "attempt", attempt+1)
	}

	return "", ErrCBUGeneration
}
