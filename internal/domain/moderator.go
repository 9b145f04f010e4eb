package domain

type Moderator struct {
	Username string `json:"username"`
}
