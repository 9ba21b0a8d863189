package database

import (
	"fmt"
	"testing"
	"time"

	"wallet-api/internal/config"
	"wallet-api/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := testDB.SeedAccountTypes(); err != nil {
		t.Fatalf("failed to seed account types: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		FirstName:    "Test",
		LastName:     "User",
		Role:         models.RoleUser,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func GetTestAccountType(t *testing.T, db *DB, name string) *models.AccountType {
	t.Helper()

	var accountType models.AccountType
	if err := db.Where("name = ?", name).First(&accountType).Error; err != nil {
		t.Fatalf("failed to get test account type %q: %v", name, err)
	}

	return &accountType
}

func CreateTestAccount(t *testing.T, db *DB, userID uint, typeName, currency, alias, cbu string) *models.Account {
	t.Helper()

	accountType := GetTestAccountType(t, db, typeName)

	account := &models.Account{
		UserID:        userID,
		AccountTypeID: accountType.ID,
		Currency:      currency,
		Name:          models.BuildAccountName(typeName, currency),
		Balance:       decimal.Zero,
		Alias:         alias,
		CBU:           cbu,
		CreationDate:  time.Now(),
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"financer_products",
		"transactions",
		"accounts",
		"account_types",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
