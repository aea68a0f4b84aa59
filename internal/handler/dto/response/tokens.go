package response

import (
	"time"

	"token-storefront/internal/usecase/commands"
	"token-storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BalanceResponse struct {
	UserID    string     `json:"userId"`
	Tokens    int64      `json:"tokens"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func FromBalanceView(v *queries.BalanceView) (*BalanceResponse, error) {
	res := &BalanceResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

type TransactionResponse struct {
	ID            uuid.UUID `json:"id"`
	Amount        int64     `json:"amount"`
	Type          string    `json:"type"`
	PaymentMethod string    `json:"paymentMethod"`
	ReferenceID   *string   `json:"referenceId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type TransactionListResponse struct {
	Items      []*TransactionResponse `json:"items"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

func FromTransactionList(items []*queries.TransactionView, next *queries.Cursor) (*TransactionListResponse, error) {
	res := &TransactionListResponse{Items: make([]*TransactionResponse, 0, len(items))}
	if err := copier.Copy(&res.Items, &items); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []*TransactionResponse{}
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}

type CreateQROrderResponse struct {
	OrderID         uuid.UUID `json:"orderId"`
	Tokens          int64     `json:"tokens"`
	RemainingTokens int64     `json:"remainingTokens"`
}

func FromCreateOrderResult(r *commands.CreateOrderResult) (*CreateQROrderResponse, error) {
	res := &CreateQROrderResponse{}
	if err := copier.Copy(res, r); err != nil {
		return nil, err
	}
	return res, nil
}
