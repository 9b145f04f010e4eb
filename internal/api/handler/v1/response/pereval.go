package response

import (
	"encoding/base64"
	"time"

	"github.com/fstr-tourism/pereval-api/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05"

// CreateResponse is returned by the submit endpoint, on success and failure.
type CreateResponse struct {
	Status  int     `json:"status" example:"200"`
	Message *string `json:"message"`
	ID      *uint   `json:"id" example:"42"`
}

func Created(id uint) CreateResponse {
	return CreateResponse{Status: 200, ID: &id}
}

func CreateFailed(status int, message string) CreateResponse {
	return CreateResponse{Status: status, Message: &message}
}

// PatchResponse reports a patch: state 1 applied, 0 refused.
type PatchResponse struct {
	State   int     `json:"state" example:"1"`
	Message *string `json:"message"`
}

func Patched(r domain.UpdateResult) PatchResponse {
	if r.OK() {
		return PatchResponse{State: 1}
	}

	msg := r.Message
	return PatchResponse{State: 0, Message: &msg}
}

type UserResponse struct {
	Email string  `json:"email"`
	Fam   string  `json:"fam"`
	Name  string  `json:"name"`
	Otc   *string `json:"otc"`
	Phone string  `json:"phone"`
}

type CoordsResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Height    int     `json:"height"`
}

type ImageResponse struct {
	Data  string `json:"data"`
	Title string `json:"title"`
}

type PerevalResponse struct {
	ID          uint            `json:"id"`
	Status      string          `json:"status" example:"Ожидает модерации"`
	BeautyTitle string          `json:"beauty_title"`
	Title       string          `json:"title"`
	OtherTitles *string         `json:"other_titles"`
	Connect     *string         `json:"connect"`
	AddTime     string          `json:"add_time" example:"2021-09-22T13:18:13"`
	User        UserResponse    `json:"user"`
	Coords      CoordsResponse  `json:"coords"`
	LevelWinter *string         `json:"level_winter"`
	LevelSummer *string         `json:"level_summer"`
	LevelAutumn *string         `json:"level_autumn"`
	LevelSpring *string         `json:"level_spring"`
	Images      []ImageResponse `json:"images"`
}

func NewPerevalResponse(p domain.Pereval) PerevalResponse {
	images := make([]ImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageResponse{
			Data:  base64.StdEncoding.EncodeToString(img.Data),
			Title: img.Title,
		})
	}

	return PerevalResponse{
		ID:          p.ID,
		Status:      p.Status.Label(),
		BeautyTitle: p.BeautyTitle,
		Title:       p.Title,
		OtherTitles: p.OtherTitles,
		Connect:     p.Connect,
		AddTime:     formatTime(p.AddTime),
		User: UserResponse{
			Email: p.User.Email,
			Fam:   p.User.Surname,
			Name:  p.User.Name,
			Otc:   p.User.Patronymic,
			Phone: p.User.Phone,
		},
		Coords: CoordsResponse{
			Latitude:  p.Coords.Latitude,
			Longitude: p.Coords.Longitude,
			Height:    p.Coords.Height,
		},
		LevelWinter: p.Level.Winter,
		LevelSummer: p.Level.Summer,
		LevelAutumn: p.Level.Autumn,
		LevelSpring: p.Level.Spring,
		Images:      images,
	}
}

func NewPerevalListResponse(perevals []domain.Pereval) []PerevalResponse {
	res := make([]PerevalResponse, 0, len(perevals))
	for _, p := range perevals {
		res = append(res, NewPerevalResponse(p))
	}

	return res
}

// add_time is stored without a zone and rendered the same way.
func formatTime(t time.Time) string {
	if t.Nanosecond() != 0 {
		return t.Format(timeLayout + ".999999")
	}
	return t.Format(timeLayout)
}

// StatusResponse is returned by the moderation endpoint.
type StatusResponse struct {
	ID         uint   `json:"id"`
	Status     string `json:"status"`
	PrevStatus string `json:"prev_status"`
}
