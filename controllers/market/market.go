package marketController

import (
	"errors"
	"log"
	"time"

	"lnf/database"
	"lnf/middleware"
	"lnf/models"
	"lnf/utils"
	marketValidator "lnf/validators/market"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Browse returns available listings, newest first
func Browse(c *fiber.Ctx) error {
	var items []models.MarketItem
	if err := database.Database.Db.
		Where("status = ?", models.MarketStatusAvailable).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch listings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listings fetched!", items)
}

// Sell creates a new listing
func Sell(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	req, ok := c.Locals("validatedSell").(*marketValidator.SellRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	image := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		saved, err := utils.SaveUploadedImage(file)
		if err != nil {
			if errors.Is(err, utils.ErrFileType) || errors.Is(err, utils.ErrFileSize) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
			}
			log.Printf("Error saving upload: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
		}
		image = saved
	}

	item := models.MarketItem{
		SellerID:    userId,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		Category:    req.Category,
		Image:       image,
		Status:      models.MarketStatusAvailable,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		log.Printf("Error listing item: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while listing the item. Please try again.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Item listed successfully!", item)
}

// ItemDetail returns one listing
func ItemDetail(c *fiber.Ctx) error {
	var item models.MarketItem
	if err := database.Database.Db.Where("id = ?", c.Params("id")).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Listing fetched!", item)
}

// Buy settles a purchase against the buyer's wallet.
//
// Preconditions, checked in order, first failure wins: listing exists,
// listing still available, buyer is not the seller, buyer can afford it.
// The effects run in one transaction; the status flip is a compare-and-set
// (one row must be affected) and the debit is guarded by the balance check
// in the UPDATE itself, so two concurrent buyers cannot both win.
func Buy(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var item models.MarketItem
	if err := db.Where("id = ?", c.Params("id")).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Listing not found!", nil)
	}

	if item.Status != models.MarketStatusAvailable {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This item is no longer available.", nil)
	}

	if item.SellerID == userId {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot buy your own item.", nil)
	}

	var buyer models.User
	if err := db.First(&buyer, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	if buyer.WalletBalance < item.Price {
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Insufficient wallet balance.", nil)
	}

	var seller models.User
	if err := db.First(&seller, item.SellerID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process purchase!", nil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process purchase!", nil)
	}

	// Compare-and-set: available -> sold. Anything but exactly one affected
	// row means another buyer got here first.
	res := tx.Model(&models.MarketItem{}).
		Where("id = ? AND status = ?", item.ID, models.MarketStatusAvailable).
		Update("status", models.MarketStatusSold)
	if res.Error != nil {
		tx.Rollback()
		log.Printf("Error processing purchase: %v", res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while processing the purchase. Please try again.", nil)
	}
	if res.RowsAffected != 1 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "This item is no longer available.", nil)
	}

	// Guarded debit: the balance check rides on the UPDATE so a concurrent
	// spend elsewhere cannot push the wallet negative.
	res = tx.Model(&models.User{}).
		Where("id = ? AND wallet_balance >= ?", buyer.ID, item.Price).
		Update("wallet_balance", gorm.Expr("wallet_balance - ?", item.Price))
	if res.Error != nil {
		tx.Rollback()
		log.Printf("Error debiting buyer: %v", res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while processing the purchase. Please try again.", nil)
	}
	if res.RowsAffected != 1 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Insufficient wallet balance.", nil)
	}

	if err := tx.Model(&models.User{}).
		Where("id = ?", item.SellerID).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", item.Price)).Error; err != nil {
		tx.Rollback()
		log.Printf("Error crediting seller: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while processing the purchase. Please try again.", nil)
	}

	order := models.Order{
		BuyerID:  buyer.ID,
		SellerID: item.SellerID,
		ItemID:   item.ID,
		Amount:   item.Price,
		Status:   models.OrderStatusCompleted,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating order: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while processing the purchase. Please try again.", nil)
	}

	now := time.Now()
	payment := models.Payment{
		OrderID:       order.ID,
		Amount:        item.Price,
		PaymentMethod: models.PaymentMethodWallet,
		Status:        models.PaymentStatusCompleted,
		TransactionID: uuid.NewString(),
		CompletedAt:   &now,
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while processing the purchase. Please try again.", nil)
	}

	// Ledger rows for both sides of the transfer
	ledger := []models.WalletTransaction{
		{
			UserID:          buyer.ID,
			TransactionType: models.TransactionTypePurchase,
			Amount:          item.Price,
			BalanceBefore:   buyer.WalletBalance,
			BalanceAfter:    buyer.WalletBalance - item.Price,
			Status:          models.TransactionStatusCompleted,
			Description:     "Purchase: " + item.Title,
			OrderID:         order.ID,
			TransactionDate: now,
		},
		{
			UserID:          seller.ID,
			TransactionType: models.TransactionTypeSale,
			Amount:          item.Price,
			BalanceBefore:   seller.WalletBalance,
			BalanceAfter:    seller.WalletBalance + item.Price,
			Status:          models.TransactionStatusCompleted,
			Description:     "Sale: " + item.Title,
			OrderID:         order.ID,
			TransactionDate: now,
		},
	}
	if err := tx.Create(&ledger).Error; err != nil {
		tx.Rollback()
		log.Printf("Error writing wallet ledger: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while processing the purchase. Please try again.", nil)
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing purchase: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "An error occurred while processing the purchase. Please try again.", nil)
	}

	utils.SendPurchaseReceiptEmail(buyer.Email, item.Title, item.Price)
	utils.SendSaleEmail(seller.Email, item.Title, item.Price)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase successful!", fiber.Map{
		"orderId":       order.ID,
		"paymentId":     payment.ID,
		"transactionId": payment.TransactionID,
		"amount":        order.Amount,
	})
}

// ListOrders returns the caller's purchases and sales
func ListOrders(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var orders []models.Order
	if err := database.Database.Db.
		Where("buyer_id = ? OR seller_id = ?", userId, userId).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched!", orders)
}

// SubmitReview lets the buyer or seller of a completed order rate the
// counterparty. One review per reviewer per order; the reviewed user's
// aggregate rating is recomputed incrementally.
func SubmitReview(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	orderId := c.Params("id")

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var order models.Order
	if err := db.Where("id = ?", orderId).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if order.Status != models.OrderStatusCompleted {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order is not completed!", nil)
	}

	var reviewedID uint
	switch userId {
	case order.BuyerID:
		reviewedID = order.SellerID
	case order.SellerID:
		reviewedID = order.BuyerID
	default:
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not part of this order!", nil)
	}

	var existing models.Review
	if err := db.Where("order_id = ? AND reviewer_id = ?", order.ID, userId).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this order!", nil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	review := models.Review{
		ReviewerID: userId,
		ReviewedID: reviewedID,
		OrderID:    order.ID,
		Rating:     reqData.Rating,
		Comment:    reqData.Comment,
	}
	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	var reviewed models.User
	if err := tx.First(&reviewed, reviewedID).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	// Incremental aggregate: new mean folds the fresh rating into the count
	total := reviewed.TotalRatings
	reviewed.Rating = (reviewed.Rating*float64(total) + float64(reqData.Rating)) / float64(total+1)
	reviewed.TotalRatings = total + 1

	if err := tx.Save(&reviewed).Error; err != nil {
		tx.Rollback()
		log.Printf("Error updating aggregate rating: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", review)
}
