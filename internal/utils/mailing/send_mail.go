package mailing

import (
	"StockPilot-Backend/internal/utils"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// SendLowStockAlert emails the store owner a list of items at or below their
// reorder point.
func SendLowStockAlert(toEmail string, storeName string, lines []string) error {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<p>The following items in <b>%s</b> are at or below their reorder point:</p><ul>", storeName))
	for _, line := range lines {
		b.WriteString("<li>" + line + "</li>")
	}
	b.WriteString("</ul><p>Open the inventory dashboard to place a purchase order.</p>")

	subject := fmt.Sprintf("Low stock alert for %s", storeName)
	return SendMail(toEmail, subject, b.String())
}

// SendPasswordResetMail emails a reset link containing the short-lived token.
func SendPasswordResetMail(toEmail string, token string) error {
	emailConfig := LoadMailConfig()
	link := fmt.Sprintf("%s/reset-password?token=%s", emailConfig.AppURL, token)
	body := fmt.Sprintf("<p>Click <a href=\"%s\">here</a> to reset your password. The link expires in 30 minutes.</p>", link)
	return SendMail(toEmail, "Reset your password", body)
}
