package domain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var ErrInvalidPereval = errors.New("invalid pereval data")

type Coords struct {
	ID        uint    `json:"-"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Height    int     `json:"height"`
}

// Level holds the difficulty category per season, e.g. "1А".
type Level struct {
	Winter *string `json:"winter"`
	Summer *string `json:"summer"`
	Autumn *string `json:"autumn"`
	Spring *string `json:"spring"`
}

type Image struct {
	ID      uint      `json:"id"`
	Title   string    `json:"title"`
	Data    []byte    `json:"data"`
	AddedAt time.Time `json:"added_at"`
}

type Pereval struct {
	ID          uint      `json:"id"`
	BeautyTitle string    `json:"beauty_title"`
	Title       string    `json:"title"`
	OtherTitles *string   `json:"other_titles"`
	Connect     *string   `json:"connect"`
	AddTime     time.Time `json:"add_time"`
	Level       Level     `json:"level"`
	Status      Status    `json:"status"`
	User        User      `json:"user"`
	Coords      Coords    `json:"coords"`
	Images      []Image   `json:"images"`
}

// ImageUpload is an image as submitted by a client. Data is expected to be
// base64, anything else is stored as the raw bytes of the string.
type ImageUpload struct {
	Title string
	Data  string
}

func (u ImageUpload) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Title, validation.Required),
	)
}

// NewPereval is the input of a submission. It never carries a status.
type NewPereval struct {
	BeautyTitle string
	Title       string
	OtherTitles *string
	Connect     *string
	AddTime     time.Time
	User        User
	Coords      Coords
	Level       Level
	Images      []ImageUpload
}

func (p NewPereval) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.BeautyTitle, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.User),
		validation.Field(&p.Images),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPereval, err)
	}

	return nil
}

func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Email, validation.Required, is.Email),
		validation.Field(&u.Surname, validation.Required),
		validation.Field(&u.Name, validation.Required),
		validation.Field(&u.Phone, validation.Required),
	)
}

// PerevalPatch is a merge patch: only fields with Set are applied.
// The creator is deliberately absent.
type PerevalPatch struct {
	BeautyTitle Optional[string]
	Title       Optional[string]
	OtherTitles Optional[*string]
	Connect     Optional[*string]
	AddTime     Optional[time.Time]
	Coords      Optional[Coords]
	Level       Optional[Level]
	Images      Optional[[]ImageUpload]
}

func (p PerevalPatch) Empty() bool {
	return !p.BeautyTitle.Set && !p.Title.Set && !p.OtherTitles.Set && !p.Connect.Set &&
		!p.AddTime.Set && !p.Coords.Set && !p.Level.Set && !p.Images.Set
}

// Validate rejects nulls and blanks for fields that cannot be empty. Only
// other_titles and connect may be cleared.
func (p PerevalPatch) Validate() error {
	errs := validation.Errors{}

	if p.BeautyTitle.Set && (p.BeautyTitle.Null || p.BeautyTitle.Value == "") {
		errs["beauty_title"] = errors.New("cannot be blank")
	}
	if p.Title.Set && (p.Title.Null || p.Title.Value == "") {
		errs["title"] = errors.New("cannot be blank")
	}
	if p.AddTime.Set && (p.AddTime.Null || p.AddTime.Value.IsZero()) {
		errs["add_time"] = errors.New("cannot be blank")
	}
	if p.Coords.Set && p.Coords.Null {
		errs["coords"] = errors.New("cannot be null")
	}
	if p.Level.Set && p.Level.Null {
		errs["level"] = errors.New("cannot be null")
	}
	if p.Images.Set {
		if p.Images.Null {
			errs["images"] = errors.New("cannot be null")
		} else if err := validation.Validate(p.Images.Value); err != nil {
			errs["images"] = err
		}
	}

	if err := errs.Filter(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPereval, err)
	}

	return nil
}

type UpdateOutcome int

const (
	UpdateApplied UpdateOutcome = iota
	UpdateInvalid
	UpdateNotFound
	UpdateRejected
	UpdateFailed
)

// UpdateResult is the outcome of a patch. Callers must check OK; a rejected or
// missing pereval is not reported as an error.
type UpdateResult struct {
	Outcome UpdateOutcome
	Status  Status
	Message string
}

func (r UpdateResult) OK() bool {
	return r.Outcome == UpdateApplied
}

// NaiveTime drops the zone of t and keeps its wall clock, so
// 13:18:13+03:00 becomes 13:18:13. It does not convert to UTC.
func NaiveTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// DecodeImageData decodes a base64 payload and falls back to the raw bytes of
// data when it is not valid base64.
func DecodeImageData(data string) []byte {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return []byte(data)
	}
	return decoded
}
