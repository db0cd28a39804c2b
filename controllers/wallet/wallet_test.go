package walletController_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"lnf/config"
	"lnf/database"
	"lnf/middleware"
	"lnf/models"
	walletRoutes "lnf/routers/walletRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()
	config.AppConfig.JWTKey = "test-secret"
	db := database.ConnectTestDb()

	app := fiber.New()
	walletRoutes.SetupWalletRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, username string, balance float64) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Username:      username,
		Email:         username + "@campus.edu",
		Password:      "x",
		FirstName:     "Test",
		LastName:      "User",
		WalletBalance: balance,
	}
	require.NoError(t, db.Create(user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Email)
	require.NoError(t, err)
	return user, token
}

func deposit(t *testing.T, app *fiber.App, token, body string) (int, apiResponse) {
	t.Helper()

	req := httptest.NewRequest("POST", "/wallet/deposit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestDepositCreditsWalletAndLedger(t *testing.T) {
	app, db := setupApp(t)
	user, token := createUser(t, db, "depositor", 0)

	code, _ := deposit(t, app, token, `{"amount": 50.00, "referenceId": "pay_001"}`)
	require.Equal(t, fiber.StatusOK, code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.InDelta(t, 50.00, reloaded.WalletBalance, 1e-9)

	var txn models.WalletTransaction
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&txn).Error)
	assert.Equal(t, models.TransactionTypeDeposit, txn.TransactionType)
	assert.InDelta(t, 0.00, txn.BalanceBefore, 1e-9)
	assert.InDelta(t, 50.00, txn.BalanceAfter, 1e-9)
}

// The same payment confirmation must not be credited twice.
func TestDepositReplayRejected(t *testing.T) {
	app, db := setupApp(t)
	user, token := createUser(t, db, "depositor", 0)

	code, _ := deposit(t, app, token, `{"amount": 50.00, "referenceId": "pay_001"}`)
	require.Equal(t, fiber.StatusOK, code)

	code, _ = deposit(t, app, token, `{"amount": 50.00, "referenceId": "pay_001"}`)
	assert.Equal(t, fiber.StatusConflict, code)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.InDelta(t, 50.00, reloaded.WalletBalance, 1e-9)
}

func TestDepositValidation(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "depositor", 0)

	code, _ := deposit(t, app, token, `{"amount": -5, "referenceId": "pay_001"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	code, _ = deposit(t, app, token, `{"amount": 5}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestBalanceAndHistory(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "depositor", 0)

	code, _ := deposit(t, app, token, `{"amount": 25.00, "referenceId": "pay_a"}`)
	require.Equal(t, fiber.StatusOK, code)
	code, _ = deposit(t, app, token, `{"amount": 10.00, "referenceId": "pay_b"}`)
	require.Equal(t, fiber.StatusOK, code)

	req := httptest.NewRequest("GET", "/wallet/balance", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))

	var balance struct {
		Balance float64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &balance))
	assert.InDelta(t, 35.00, balance.Balance, 1e-9)

	histReq := httptest.NewRequest("GET", "/wallet/history?type=DEPOSIT", nil)
	histReq.Header.Set("Authorization", "Bearer "+token)
	histResp, err := app.Test(histReq, -1)
	require.NoError(t, err)
	defer histResp.Body.Close()
	require.Equal(t, fiber.StatusOK, histResp.StatusCode)

	raw, err = io.ReadAll(histResp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))

	var history struct {
		Transactions []models.WalletTransaction `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &history))
	assert.Len(t, history.Transactions, 2)
}

func TestWalletRequiresAuth(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/wallet/balance", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
