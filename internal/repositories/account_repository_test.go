package repositories

import (
	"testing"
	"time"

	"wallet-api/internal/database"
	"wallet-api/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     AccountRepositoryInterface
	testUser *models.User
	savings  *models.AccountType
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)

	s.testUser = database.CreateTestUser(s.T(), s.db, gofakeit.Email())
	s.savings = database.GetTestAccountType(s.T(), s.db, models.AccountTypeSavings)
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) newAccount(alias, cbu string) *models.Account {
	return &models.Account{
		UserID:        s.testUser.ID,
		AccountTypeID: s.savings.ID,
		Currency:      "ARS",
		Name:          models.BuildAccountName(s.savings.Name, "ARS"),
		Balance:       decimal.Zero,
		Alias:         alias,
		CBU:           cbu,
		CreationDate:  time.Now(),
	}
}

// Test Create functionality
func (s *AccountRepositorySuite) TestCreate() {
	account := s.newAccount("lago.rio.monte", "2850590940090418135201")

	err := s.repo.Create(account)
	s.NoError(err)
	s.NotZero(account.ID)
	s.NotZero(account.CreatedAt)
	s.NotZero(account.CreationDate)
}

func (s *AccountRepositorySuite) TestCreate_DuplicateAlias() {
	first := s.newAccount("lago.rio.monte", "2850590940090418135201")
	s.NoError(s.repo.Create(first))

	second := s.newAccount("lago.rio.monte", "0170099220000067797370")
	err := s.repo.Create(second)
	s.Error(err)
}

func (s *AccountRepositorySuite) TestCreate_DuplicateCBU() {
	first := s.newAccount("lago.rio.monte", "2850590940090418135201")
	s.NoError(s.repo.Create(first))

	second := s.newAccount("sol.luna.cielo", "2850590940090418135201")
	err := s.repo.Create(second)
	s.Error(err)
}

// Test GetByID functionality
func (s *AccountRepositorySuite) TestGetByID() {
	created := s.newAccount("lago.rio.monte", "2850590940090418135201")
	s.NoError(s.repo.Create(created))

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal(created.Alias, found.Alias)
	s.Equal(created.CBU, found.CBU)
	s.Equal(s.savings.Name, found.AccountType.Name, "account type should be preloaded")
}

func (s *AccountRepositorySuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(99999)
	s.ErrorIs(err, ErrAccountNotFound)
	s.Nil(found)
}

// Test GetByUserID functionality
func (s *AccountRepositorySuite) TestGetByUserID() {
	s.NoError(s.repo.Create(s.newAccount("lago.rio.monte", "2850590940090418135201")))
	s.NoError(s.repo.Create(s.newAccount("sol.luna.cielo", "0170099220000067797370")))

	otherUser := database.CreateTestUser(s.T(), s.db, gofakeit.Email())
	other := s.newAccount("puma.zorro.lobo", "0720000788000012345678")
	other.UserID = otherUser.ID
	s.NoError(s.repo.Create(other))

	accounts, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Len(accounts, 2)
	for _, account := range accounts {
		s.Equal(s.testUser.ID, account.UserID)
	}
}

func (s *AccountRepositorySuite) TestGetByUserID_Empty() {
	accounts, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Empty(accounts)
}

// Test GetAll functionality
func (s *AccountRepositorySuite) TestGetAll() {
	s.NoError(s.repo.Create(s.newAccount("lago.rio.monte", "2850590940090418135201")))
	s.NoError(s.repo.Create(s.newAccount("sol.luna.cielo", "0170099220000067797370")))

	accounts, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(accounts, 2)
}

func (s *AccountRepositorySuite) TestGetAll_Empty() {
	accounts, err := s.repo.GetAll()
	s.NoError(err)
	s.Empty(accounts)
}

// Test Update functionality
func (s *AccountRepositorySuite) TestUpdate() {
	account := s.newAccount("lago.rio.monte", "2850590940090418135201")
	s.NoError(s.repo.Create(account))

	account.Alias = "sol.luna.cielo"
	account.Currency = "USD"
	s.NoError(s.repo.Update(account))

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal("sol.luna.cielo", found.Alias)
	s.Equal("USD", found.Currency)
}

// Test Delete functionality
func (s *AccountRepositorySuite) TestDelete() {
	account := s.newAccount("lago.rio.monte", "2850590940090418135201")
	s.NoError(s.repo.Create(account))

	s.NoError(s.repo.Delete(account.ID))

	found, err := s.repo.GetByID(account.ID)
	s.ErrorIs(err, ErrAccountNotFound)
	s.Nil(found)
}

func (s *AccountRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(99999)
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestDelete_IsSoftDelete() {
	account := s.newAccount("lago.rio.monte", "2850590940090418135201")
	s.NoError(s.repo.Create(account))
	s.NoError(s.repo.Delete(account.ID))

	var count int64
	err := s.db.DB.Unscoped().Model(&models.Account{}).
		Where("id = ?", account.ID).Count(&count).Error
	s.NoError(err)
	s.Equal(int64(1), count, "deleted row should remain in the table")
}

// Test existence checks
func (s *AccountRepositorySuite) TestExistsByID() {
	account := s.newAccount("lago.rio.monte", "2850590940090418135201")
	s.NoError(s.repo.Create(account))

	exists, err := s.repo.ExistsByID(account.ID)
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByID(99999)
	s.NoError(err)
	s.False(exists)
}

func (s *AccountRepositorySuite) TestExistsByAlias() {
	s.NoError(s.repo.Create(s.newAccount("lago.rio.monte", "2850590940090418135201")))

	exists, err := s.repo.ExistsByAlias("lago.rio.monte")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByAlias("sol.luna.cielo")
	s.NoError(err)
	s.False(exists)
}

func (s *AccountRepositorySuite) TestExistsByCBU() {
	s.NoError(s.repo.Create(s.newAccount("lago.rio.monte", "2850590940090418135201")))

	exists, err := s.repo.ExistsByCBU("2850590940090418135201")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByCBU("0170099220000067797370")
	s.NoError(err)
	s.False(exists)
}
