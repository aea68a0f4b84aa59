package commands

import (
	"context"
	"log/slog"
	"time"

	"token-storefront/internal/domain/ledger"
	"token-storefront/internal/domain/payment"
	"token-storefront/internal/pkg/errs"
	"token-storefront/internal/pkg/ptr"
	"token-storefront/internal/usecase/shared"
)

type WebhookOutcome string

const (
	OutcomeCredited     WebhookOutcome = "credited"
	OutcomeDuplicate    WebhookOutcome = "duplicate"
	OutcomeAcknowledged WebhookOutcome = "acknowledged"
)

type WebhookResult struct {
	Outcome     WebhookOutcome
	ReferenceID string
	State       payment.State
	Tokens      int64
}

type WebhookCommands interface {
	HandleCallback(ctx context.Context, rawBody []byte, signature string) (*WebhookResult, error)
}

const defaultNotifyTimeout = 15 * time.Second

type WebhookConfig struct {
	PaymentMethod string
	NotifyTimeout time.Duration
}

type webhookCommandsImpl struct {
	uow      shared.UnitOfWork
	verifier SignatureVerifier
	notifier Notifier
	cfg      WebhookConfig
	logger   *slog.Logger
}

func NewWebhookCommands(uow shared.UnitOfWork, verifier SignatureVerifier, notifier Notifier, cfg WebhookConfig, logger *slog.Logger) WebhookCommands {
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}
	return &webhookCommandsImpl{
		uow:      uow,
		verifier: verifier,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// HandleCallback authenticates a processor callback and credits a completed
// payment at most once per reference id.
func (uc *webhookCommandsImpl) HandleCallback(ctx context.Context, rawBody []byte, signature string) (*WebhookResult, error) {
	if !uc.verifier.Verify(rawBody, signature) {
		return nil, errs.ErrInvalidSignature
	}

	cb, err := payment.ParseCallback(rawBody)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPayload)
	}

	uc.logger.Info("payment callback received",
		"reference_id", cb.ReferenceID,
		"state", string(cb.State))

	if cb.State != payment.StateCompleted {
		return &WebhookResult{Outcome: OutcomeAcknowledged, ReferenceID: cb.ReferenceID, State: cb.State}, nil
	}

	credit, err := cb.Credit()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidAdditionalParameters)
	}

	credited, err := uc.applyCredit(ctx, credit)
	if err != nil {
		return nil, err
	}

	result := &WebhookResult{
		ReferenceID: credit.ReferenceID,
		State:       cb.State,
		Tokens:      credit.Tokens,
	}
	if !credited {
		uc.logger.Info("duplicate completed callback ignored", "reference_id", credit.ReferenceID)
		result.Outcome = OutcomeDuplicate
		return result, nil
	}

	uc.logger.Info("tokens credited",
		"reference_id", credit.ReferenceID,
		"user_id", credit.UserID,
		"tokens", credit.Tokens)
	result.Outcome = OutcomeCredited

	if credit.Email != "" {
		uc.notifyCredited(credit)
	}
	return result, nil
}

// applyCredit records the reference, bumps the balance and appends the ledger
// entry in one transaction. It reports false for an already credited reference.
func (uc *webhookCommandsImpl) applyCredit(ctx context.Context, credit payment.Credit) (bool, error) {
	txn, err := ledger.NewTransaction(credit.UserID, credit.Tokens, ledger.TransactionCredit, uc.cfg.PaymentMethod, &credit.ReferenceID)
	if err != nil {
		return false, errs.Mark(err, errs.ErrInvalidAdditionalParameters)
	}

	email := ptr.NonBlank(credit.Email)

	credited := false
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		credited = false

		inserted, derr := tx.CreditedReferences().TryInsert(ctx, tx.DB(), credit.ReferenceID, credit.UserID, credit.Tokens)
		if derr != nil {
			return derr
		}
		if !inserted {
			return nil
		}

		if _, derr = tx.Balances().Credit(ctx, tx.DB(), credit.UserID, credit.Tokens, email); derr != nil {
			return derr
		}
		if derr = tx.Transactions().Record(ctx, tx.DB(), txn); derr != nil {
			return derr
		}
		credited = true
		return nil
	})
	if err != nil {
		return false, errs.Mark(errs.Wrap(err, "failed to apply credit"), errs.ErrDatabaseOperationFailed)
	}
	return credited, nil
}

func (uc *webhookCommandsImpl) notifyCredited(credit payment.Credit) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), uc.cfg.NotifyTimeout)
		defer cancel()

		if err := uc.notifier.NotifyTokensCredited(ctx, credit.Email, credit.ReferenceID, credit.Tokens); err != nil {
			uc.logger.Warn("credit notification failed",
				"reference_id", credit.ReferenceID,
				"error", err.Error())
		}
	}()
}

// IsClientError reports whether err stems from the callback content rather
// than from storage.
func IsClientError(err error) bool {
	return errs.Is(err, errs.ErrInvalidSignature) ||
		errs.Is(err, errs.ErrInvalidPayload) ||
		errs.Is(err, errs.ErrInvalidAdditionalParameters)
}
