package response

import (
	"time"

	"token-storefront/internal/usecase/commands"
	"token-storefront/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type InitiatePaymentResponse struct {
	RedirectURL string `json:"redirectUrl"`
	ReferenceID string `json:"referenceId"`
}

func FromInitiateResult(r *commands.InitiatePaymentResult) *InitiatePaymentResponse {
	return &InitiatePaymentResponse{
		RedirectURL: r.RedirectURL,
		ReferenceID: r.ReferenceID,
	}
}

type PaymentStatusResponse struct {
	ReferenceID string     `json:"referenceId"`
	Credited    bool       `json:"credited"`
	Tokens      int64      `json:"tokens"`
	CreditedAt  *time.Time `json:"creditedAt,omitempty"`
}

func FromPaymentStatusView(v *queries.PaymentStatusView) (*PaymentStatusResponse, error) {
	res := &PaymentStatusResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}
