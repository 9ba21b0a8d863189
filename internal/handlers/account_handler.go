package handlers

import (
	"net/http"

	"wallet-api/internal/dto"
	"wallet-api/internal/errors"
	"wallet-api/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount creates a new account for an existing user
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.CreateAccount(services.CreateAccountInput{
		UserID:       req.UserID,
		AccountType:  req.AccountType,
		Currency:     req.Currency,
		CreationDate: req.CreationDate,
	})
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			return SendError(c, errors.UserNotFound)
		case services.ErrAccountTypeNotFound:
			return SendError(c, errors.AccountTypeNotFound)
		case services.ErrAliasGeneration, services.ErrCBUGeneration:
			return SendError(c, errors.AccountAliasGeneration)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateAccountResponse{
		Account: account,
		Message: "Account created successfully",
	})
}

// GetAccount retrieves a specific account by ID
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := getUintParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.GetAccountByID(accountID)
	if err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// GetAllAccounts lists every account annotated with its derived status
func (h *AccountHandler) GetAllAccounts(c echo.Context) error {
	accounts, err := h.accountService.GetAllAccounts(services.FailOnEmpty)
	if err != nil {
		if err == services.ErrNoAccounts {
			return SendError(c, errors.AccountNoResults)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountStatusListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// GetUserAccounts lists the accounts owned by a user
func (h *AccountHandler) GetUserAccounts(c echo.Context) error {
	userID, err := getUintParam(c, "userId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	accounts, err := h.accountService.GetUserAccounts(userID, services.FailOnEmpty)
	if err != nil {
		if err == services.ErrNoAccountsForUser {
			return SendError(c, errors.AccountNoResults)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// UpdateAccount applies a partial update to an account
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	accountID, err := getUintParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.EditAccount(accountID, services.AccountPatch{
		CBU:         req.CBU,
		Alias:       req.Alias,
		Currency:    req.Currency,
		AccountType: req.AccountType,
	})
	if err != nil {
		switch err {
		case services.ErrAccountNotFound:
			return SendError(c, errors.AccountNotFound)
		case services.ErrAccountTypeNotFound:
			return SendError(c, errors.AccountTypeNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// DeleteAccount removes an account by ID
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	accountID, err := getUintParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.accountService.DeleteAccount(accountID); err != nil {
		if err == services.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAccountTransactions lists the transactions of an account
func (h *AccountHandler) GetAccountTransactions(c echo.Context) error {
	accountID, err := getUintParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	transactions, err := h.accountService.GetAccountTransactions(accountID, services.FailOnEmpty)
	if err != nil {
		if err == services.ErrNoTransactions {
			return SendError(c, errors.TransactionNoResults)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
	})
}

// GetAccountFinancerProducts lists the financer products of an account
func (h *AccountHandler) GetAccountFinancerProducts(c echo.Context) error {
	accountID, err := getUintParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	products, err := h.accountService.GetAccountFinancerProducts(accountID, services.FailOnEmpty)
	if err != nil {
		if err == services.ErrNoFinancerProducts {
			return SendError(c, errors.ProductNoResults)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.FinancerProductListResponse{
		Products: products,
		Total:    len(products),
	})
}
