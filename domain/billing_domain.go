package domain

import (
	"errors"
)

var (
	MessageSuccessCreateTransaction = "transaction created successfully"
	MessageSuccessWebhook           = "webhook processed"

	MessageFailedCreateTransaction = "failed to create transaction"
	MessageFailedWebhook           = "failed to process webhook"

	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrAlreadySubscribed     = errors.New("user already subscribed")
	ErrInvalidWebhookPayload = errors.New("invalid webhook payload")
)

const SubscriptionPriceIDR = 49000

type (
	CreateTransactionResponse struct {
		OrderID     string `json:"order_id"`
		SnapToken   string `json:"snap_token"`
		RedirectURL string `json:"redirect_url"`
	}

	MidtransWebhookRequest struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		PaymentType       string `json:"payment_type"`
	}
)
