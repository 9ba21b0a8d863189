package repositories

import (
	"testing"

	"wallet-api/internal/database"
	"wallet-api/internal/models"

	"github.com/stretchr/testify/suite"
)

// AccountTypeRepositorySuite defines the test suite for AccountTypeRepository
type AccountTypeRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AccountTypeRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *AccountTypeRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountTypeRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *AccountTypeRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountTypeRepositorySuite runs the test suite
func TestAccountTypeRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountTypeRepositorySuite))
}

// Test GetByName functionality
func (s *AccountTypeRepositorySuite) TestGetByName() {
	accountType, err := s.repo.GetByName(models.AccountTypeSavings)
	s.NoError(err)
	s.Equal(models.AccountTypeSavings, accountType.Name)
	s.NotZero(accountType.ID)
}

func (s *AccountTypeRepositorySuite) TestGetByName_NotFound() {
	accountType, err := s.repo.GetByName("Investment")
	s.ErrorIs(err, ErrAccountTypeNotFound)
	s.Nil(accountType)
}

func (s *AccountTypeRepositorySuite) TestGetByName_CaseSensitive() {
	accountType, err := s.repo.GetByName("savings")
	s.ErrorIs(err, ErrAccountTypeNotFound)
	s.Nil(accountType)
}

// Test GetAll functionality
func (s *AccountTypeRepositorySuite) TestGetAll() {
	accountTypes, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(accountTypes, 2)

	names := make([]string, len(accountTypes))
	for i, accountType := range accountTypes {
		names[i] = accountType.Name
	}
	s.Contains(names, models.AccountTypeSavings)
	s.Contains(names, models.AccountTypeChecking)
}
