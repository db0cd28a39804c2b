package walletController

import (
	"log"
	"time"

	"lnf/database"
	"lnf/middleware"
	"lnf/models"
	"lnf/utils"
	walletValidator "lnf/validators/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetWalletBalance returns user's current wallet balance
func GetWalletBalance(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND active = ?", userId, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet balance fetched!", fiber.Map{
		"balance": user.WalletBalance,
	})
}

// Deposit credits the wallet after an external payment confirmation.
// Replays of the same reference are rejected.
func Deposit(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND active = ?", userId, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedDeposit").(*walletValidator.DepositRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Duplicate confirmation id means the deposit was already processed
	var existingTxn models.WalletTransaction
	if err := db.Where("reference_id = ?", reqData.ReferenceID).First(&existingTxn).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Transaction already processed!", nil)
	}

	balanceBefore := user.WalletBalance
	balanceAfter := balanceBefore + reqData.Amount

	transaction := models.WalletTransaction{
		UserID:          userId,
		TransactionType: models.TransactionTypeDeposit,
		Amount:          reqData.Amount,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		Status:          models.TransactionStatusCompleted,
		Description:     "Wallet deposit",
		ReferenceID:     reqData.ReferenceID,
		TransactionDate: time.Now(),
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process deposit!", nil)
	}

	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating deposit transaction: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create transaction!", nil)
	}

	if err := tx.Model(&models.User{}).
		Where("id = ?", userId).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", reqData.Amount)).Error; err != nil {
		tx.Rollback()
		log.Printf("Error updating balance: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update balance!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process deposit!", nil)
	}

	utils.SendWalletDepositEmail(user.Email, user.FirstName, reqData.Amount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deposit successful!", fiber.Map{
		"transactionId": transaction.ID,
		"amount":        reqData.Amount,
		"balanceBefore": balanceBefore,
		"balanceAfter":  balanceAfter,
		"referenceId":   reqData.ReferenceID,
	})
}

// GetWalletHistory returns user's wallet transaction history
func GetWalletHistory(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND active = ?", userId, true).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	txnType := c.Query("type") // DEPOSIT, PURCHASE, SALE

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.WalletTransaction{}).Where("user_id = ?", userId)

	if txnType != "" {
		query = query.Where("transaction_type = ?", txnType)
	}

	var total int64
	query.Count(&total)

	var transactions []models.WalletTransaction
	if err := query.
		Order("transaction_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet history fetched!", fiber.Map{
		"transactions":   transactions,
		"currentBalance": user.WalletBalance,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
