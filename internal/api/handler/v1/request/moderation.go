package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/fstr-tourism/pereval-api/internal/domain"
)

type StatusRequest struct {
	Status int `json:"status" example:"2"`
}

func (req *StatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			int(domain.StatusPending), int(domain.StatusAccepted), int(domain.StatusRejected),
		)),
	)
}
