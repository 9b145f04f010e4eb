package response

import "github.com/fstr-tourism/pereval-api/internal/domain"

type LoginResponse struct {
	Token     string           `json:"token"`
	Moderator domain.Moderator `json:"moderator"`
}
