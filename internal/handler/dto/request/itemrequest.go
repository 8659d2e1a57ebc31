package request

import (
	"lendly/internal/usecase/commands"
)

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

func (r CreateItemRequestRequest) ToCommand() commands.CreateItemRequestRequest {
	return commands.CreateItemRequestRequest{Description: r.Description}
}
