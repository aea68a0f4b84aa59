package request

import (
	"token-storefront/internal/usecase/commands"
)

type CreateQROrderRequest struct {
	Prompt   string `json:"prompt" binding:"max=4000"`
	Response string `json:"response"`
	Tokens   int64  `json:"tokens"`
}

func (r *CreateQROrderRequest) ToCommand() commands.CreateOrderRequest {
	return commands.CreateOrderRequest{
		Prompt:   r.Prompt,
		Response: r.Response,
		Tokens:   r.Tokens,
	}
}
