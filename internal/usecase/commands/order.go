package commands

import (
	"context"
	"log/slog"
	"time"

	"token-storefront/internal/domain/ledger"
	"token-storefront/internal/infra"
	"token-storefront/internal/pkg/errs"
	"token-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrder = errs.New("invalid order")
)

type CreateOrderRequest struct {
	Prompt   string
	Response string
	Tokens   int64
}

type CreateOrderResult struct {
	OrderID         uuid.UUID
	Tokens          int64
	RemainingTokens int64
}

type OrderCommands interface {
	CreateQROrder(ctx context.Context, userID, email string, req CreateOrderRequest) (*CreateOrderResult, error)
}

type orderCommandsImpl struct {
	uow           shared.UnitOfWork
	notifier      Notifier
	notifyTimeout time.Duration
	logger        *slog.Logger
}

func NewOrderCommands(uow shared.UnitOfWork, notifier Notifier, notifyTimeout time.Duration, logger *slog.Logger) OrderCommands {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &orderCommandsImpl{
		uow:           uow,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		logger:        logger,
	}
}

// CreateQROrder pays for a QR order from the token balance. The debit, the
// spend entry and the order row commit together or not at all.
func (uc *orderCommandsImpl) CreateQROrder(ctx context.Context, userID, email string, req CreateOrderRequest) (*CreateOrderResult, error) {
	order, err := ledger.NewOrder(userID, email, req.Prompt, req.Response, req.Tokens)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOrder)
	}
	spend, err := order.SpendTransaction()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOrder)
	}

	var remaining int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BalanceByUserID(ctx, order.UserID())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrBalanceNotFound
			}
			return derr
		}
		if snap.Tokens < order.Tokens() {
			return errs.ErrInsufficientTokens
		}

		balance, derr := tx.Balances().Debit(ctx, tx.DB(), order.UserID(), order.Tokens())
		if derr != nil {
			return derr
		}
		remaining = balance.Tokens

		if derr = tx.Transactions().Record(ctx, tx.DB(), spend); derr != nil {
			return derr
		}
		return tx.Orders().Create(ctx, tx.DB(), order)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("qr order completed",
		"order_id", order.ID().String(),
		"user_id", order.UserID(),
		"tokens", order.Tokens())

	if order.Email() != "" {
		uc.notifyCompleted(order.Email(), order.Tokens())
	}

	return &CreateOrderResult{
		OrderID:         order.ID(),
		Tokens:          order.Tokens(),
		RemainingTokens: remaining,
	}, nil
}

func (uc *orderCommandsImpl) notifyCompleted(to string, tokens int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), uc.notifyTimeout)
		defer cancel()

		if err := uc.notifier.NotifyOrderCompleted(ctx, to, tokens); err != nil {
			uc.logger.Warn("order notification failed", "error", err.Error())
		}
	}()
}
