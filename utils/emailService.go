package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"lnf/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		// Mail not configured; keep the trigger a no-op in dev
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", config.AppConfig.AppName, from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1D3557; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D3557; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #457B9D; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				You are receiving this because you have an account on the campus lost &amp; found.
			</div>
		</div>
	</body>
	</html>
	`, config.AppConfig.AppName, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, firstName string) {
	subject := "Welcome to " + config.AppConfig.AppName
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your account has been created. You can now report lost items, post things
		you have found, and trade secondhand goods on the marketplace.</p>
	`, firstName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome!", body))
}

// 2. Lost item alert (fan-out companion to the in-app notification)
func SendLostItemAlertEmail(email, itemTitle, location string) {
	subject := "New Lost Item Posted: " + itemTitle
	body := fmt.Sprintf(`
		<p>A new lost item <strong>%s</strong> was posted in <strong>%s</strong>.</p>
		<div class="info-box">Check if you've found something similar!</div>
	`, itemTitle, location)

	go SendEmail([]string{email}, subject, getEmailTemplate("Lost Item Alert", body))
}

// 3. Purchase receipt (to buyer)
func SendPurchaseReceiptEmail(email, itemTitle string, amount float64) {
	subject := "Purchase Confirmed: " + itemTitle
	body := fmt.Sprintf(`
		<p>Your purchase of <strong>%s</strong> for <strong>%.2f</strong> is complete.</p>
		<p>The amount has been debited from your wallet.</p>
	`, itemTitle, amount)

	go SendEmail([]string{email}, subject, getEmailTemplate("Purchase Receipt", body))
}

// 4. Sale notice (to seller)
func SendSaleEmail(email, itemTitle string, amount float64) {
	subject := "Item Sold: " + itemTitle
	body := fmt.Sprintf(`
		<p>Your listing <strong>%s</strong> has been sold.</p>
		<p><strong>%.2f</strong> has been credited to your wallet.</p>
	`, itemTitle, amount)

	go SendEmail([]string{email}, subject, getEmailTemplate("Item Sold", body))
}

// 5. Wallet deposit confirmation
func SendWalletDepositEmail(email, firstName string, amount float64) {
	subject := "Funds Added to Wallet"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We have received your deposit of <strong>%.2f</strong>.</p>
		<p>Your wallet balance has been updated.</p>
	`, firstName, amount)

	go SendEmail([]string{email}, subject, getEmailTemplate("Deposit Confirmed", body))
}
