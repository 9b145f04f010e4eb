package domain

type User struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	Surname    string  `json:"surname"`
	Name       string  `json:"name"`
	Patronymic *string `json:"patronymic,omitempty"`
	Phone      string  `json:"phone"`
}
