package billing

import (
	"StockPilot-Backend/domain"
	"StockPilot-Backend/entities"
	"StockPilot-Backend/internal/utils"
	"StockPilot-Backend/pkg/user"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	BillingService interface {
		CreateSubscriptionTransaction(ctx context.Context, userID string) (domain.CreateTransactionResponse, error)
		HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error
	}

	billingService struct {
		billingRepository BillingRepository
		userRepository    user.UserRepository
		snapClient        snap.Client
	}
)

func NewBillingService(billingRepository BillingRepository, userRepository user.UserRepository) BillingService {
	var client snap.Client
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &billingService{
		billingRepository: billingRepository,
		userRepository:    userRepository,
		snapClient:        client,
	}
}

func (s *billingService) CreateSubscriptionTransaction(ctx context.Context, userID string) (domain.CreateTransactionResponse, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateTransactionResponse{}, domain.ErrUserNotFound
		}
		return domain.CreateTransactionResponse{}, err
	}
	if owner.IsSubscribed {
		return domain.CreateTransactionResponse{}, domain.ErrAlreadySubscribed
	}

	orderID := fmt.Sprintf("SUB-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: domain.SubscriptionPriceIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: owner.Name,
			Email: owner.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "pro-subscription",
				Name:  "Pro subscription (monthly)",
				Price: domain.SubscriptionPriceIDR,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CreateTransactionResponse{}, snapErr
	}

	transaction := &entities.Transaction{
		ID:          uuid.New(),
		UserID:      owner.ID,
		OrderID:     orderID,
		Amount:      domain.SubscriptionPriceIDR,
		Status:      "Pending",
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}
	if err := s.billingRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CreateTransactionResponse{}, err
	}

	return domain.CreateTransactionResponse{
		OrderID:     orderID,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *billingService) HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error {
	if req.OrderID == "" || req.TransactionStatus == "" {
		return domain.ErrInvalidWebhookPayload
	}

	transaction, err := s.billingRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	transaction.PaymentType = req.PaymentType

	switch req.TransactionStatus {
	case "capture", "settlement":
		if req.FraudStatus == "challenge" || req.FraudStatus == "deny" {
			transaction.Status = "Cancelled"
			break
		}
		transaction.Status = "Settlement"
	case "deny", "cancel":
		transaction.Status = "Cancelled"
	case "expire":
		transaction.Status = "Expired"
	default:
		transaction.Status = "Pending"
	}

	if err := s.billingRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	if transaction.Status != "Settlement" {
		return nil
	}

	owner, err := s.userRepository.GetUserByID(ctx, transaction.UserID.String())
	if err != nil {
		return err
	}
	if owner.IsSubscribed {
		return nil
	}
	owner.IsSubscribed = true
	return s.userRepository.UpdateUser(ctx, owner)
}
