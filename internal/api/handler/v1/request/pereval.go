package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/fstr-tourism/pereval-api/internal/domain"
)

// At least five digits, only digits, spaces, dashes, dots, parentheses and a
// leading plus.
const phoneRegexPattern = `^(?=(?:\D*\d){5,15}\D*$)\+?[\d\s().\-]+$`

const levelCodeMaxLength = 6

var phoneExp = regexp2.MustCompile(phoneRegexPattern, regexp2.None)

var (
	errInvalidPhone   = errors.New("must be a phone number")
	errUserNotAllowed = errors.New("user cannot be changed")
)

type UserRequest struct {
	Email string  `json:"email" example:"qwerty@mail.ru"`
	Fam   string  `json:"fam" example:"Пупкин"`
	Name  string  `json:"name" example:"Василий"`
	Otc   *string `json:"otc" example:"Иванович"`
	Phone string  `json:"phone" example:"+7 555 55 55"`
}

func (req UserRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Fam, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Otc, validation.Length(0, 255)),
		validation.Field(&req.Phone, validation.Required, validation.By(validatePhone)),
	)
}

func validatePhone(value interface{}) error {
	phone, _ := value.(string)
	ok, err := phoneExp.MatchString(phone)
	if err != nil {
		return err
	}
	if !ok {
		return errInvalidPhone
	}

	return nil
}

type CoordsRequest struct {
	Latitude  *FlexFloat `json:"latitude" swaggertype:"number" example:"45.3842"`
	Longitude *FlexFloat `json:"longitude" swaggertype:"number" example:"7.1525"`
	Height    *FlexInt   `json:"height" swaggertype:"integer" example:"1200"`
}

func (req CoordsRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Latitude, validation.NotNil, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Longitude, validation.NotNil, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&req.Height, validation.NotNil),
	)
}

func (req CoordsRequest) toDomain() domain.Coords {
	var c domain.Coords
	if req.Latitude != nil {
		c.Latitude = float64(*req.Latitude)
	}
	if req.Longitude != nil {
		c.Longitude = float64(*req.Longitude)
	}
	if req.Height != nil {
		c.Height = int(*req.Height)
	}

	return c
}

type LevelRequest struct {
	Winter *string `json:"winter" example:""`
	Summer *string `json:"summer" example:"1А"`
	Autumn *string `json:"autumn" example:"1А"`
	Spring *string `json:"spring" example:""`
}

func (req LevelRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Winter, validation.Length(0, levelCodeMaxLength)),
		validation.Field(&req.Summer, validation.Length(0, levelCodeMaxLength)),
		validation.Field(&req.Autumn, validation.Length(0, levelCodeMaxLength)),
		validation.Field(&req.Spring, validation.Length(0, levelCodeMaxLength)),
	)
}

func (req LevelRequest) toDomain() domain.Level {
	return domain.Level{
		Winter: req.Winter,
		Summer: req.Summer,
		Autumn: req.Autumn,
		Spring: req.Spring,
	}
}

type ImageRequest struct {
	Data  string `json:"data" example:"aW1hZ2U="`
	Title string `json:"title" example:"Седловина"`
}

func (req ImageRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
	)
}

func imagesToDomain(images []ImageRequest) []domain.ImageUpload {
	uploads := make([]domain.ImageUpload, 0, len(images))
	for _, img := range images {
		uploads = append(uploads, domain.ImageUpload{Title: img.Title, Data: img.Data})
	}

	return uploads
}

type CreatePerevalRequest struct {
	BeautyTitle string         `json:"beauty_title" example:"пер. "`
	Title       string         `json:"title" example:"Пхия"`
	OtherTitles *string        `json:"other_titles" example:"Триев"`
	Connect     *string        `json:"connect" example:""`
	AddTime     *FlexTime      `json:"add_time" swaggertype:"string" example:"2021-09-22 13:18:13"`
	User        *UserRequest   `json:"user"`
	Coords      *CoordsRequest `json:"coords"`
	Level       *LevelRequest  `json:"level"`
	Images      []ImageRequest `json:"images"`
}

func (req *CreatePerevalRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BeautyTitle, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.OtherTitles, validation.Length(0, 255)),
		validation.Field(&req.Connect, validation.Length(0, 255)),
		validation.Field(&req.AddTime, validation.NotNil),
		validation.Field(&req.User, validation.NotNil),
		validation.Field(&req.Coords, validation.NotNil),
		validation.Field(&req.Level, validation.NotNil),
		validation.Field(&req.Images, validation.NotNil),
	)
}

func (req *CreatePerevalRequest) ToDomain() domain.NewPereval {
	p := domain.NewPereval{
		BeautyTitle: req.BeautyTitle,
		Title:       req.Title,
		OtherTitles: req.OtherTitles,
		Connect:     req.Connect,
		Images:      imagesToDomain(req.Images),
	}
	if req.AddTime != nil {
		p.AddTime = req.AddTime.Time
	}
	if req.User != nil {
		p.User = domain.User{
			Email:      req.User.Email,
			Surname:    req.User.Fam,
			Name:       req.User.Name,
			Patronymic: req.User.Otc,
			Phone:      req.User.Phone,
		}
	}
	if req.Coords != nil {
		p.Coords = req.Coords.toDomain()
	}
	if req.Level != nil {
		p.Level = req.Level.toDomain()
	}

	return p
}

// PatchPerevalRequest is a merge patch. Absent keys stay untouched, other
// keys are rejected, and user may only be given as null.
type PatchPerevalRequest struct {
	BeautyTitle domain.Optional[string]          `json:"beauty_title" swaggertype:"string"`
	Title       domain.Optional[string]          `json:"title" swaggertype:"string"`
	OtherTitles domain.Optional[*string]         `json:"other_titles" swaggertype:"string"`
	Connect     domain.Optional[*string]         `json:"connect" swaggertype:"string"`
	AddTime     domain.Optional[FlexTime]        `json:"add_time" swaggertype:"string"`
	User        domain.Optional[json.RawMessage] `json:"user" swaggerignore:"true"`
	Coords      domain.Optional[CoordsRequest]   `json:"coords" swaggertype:"object"`
	Level       domain.Optional[LevelRequest]    `json:"level" swaggertype:"object"`
	Images      domain.Optional[[]ImageRequest]  `json:"images" swaggertype:"array,object"`
}

// DecodePatch reads a patch body and fails on unknown keys.
func DecodePatch(r io.Reader) (PatchPerevalRequest, error) {
	var req PatchPerevalRequest

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return PatchPerevalRequest{}, fmt.Errorf("dec.Decode -> %w", err)
	}
	if dec.More() {
		return PatchPerevalRequest{}, errors.New("body must contain a single JSON object")
	}

	return req, nil
}

func (req *PatchPerevalRequest) Validate() error {
	errs := validation.Errors{}

	if req.User.Set && !req.User.Null {
		errs["user"] = errUserNotAllowed
	}
	if req.BeautyTitle.Set {
		errs["beauty_title"] = validation.Validate(req.BeautyTitle.Value, validation.Length(0, 255))
	}
	if req.Title.Set {
		errs["title"] = validation.Validate(req.Title.Value, validation.Length(0, 255))
	}
	if req.OtherTitles.Set {
		errs["other_titles"] = validation.Validate(req.OtherTitles.Value, validation.Length(0, 255))
	}
	if req.Connect.Set {
		errs["connect"] = validation.Validate(req.Connect.Value, validation.Length(0, 255))
	}
	if req.Coords.Set && !req.Coords.Null {
		errs["coords"] = req.Coords.Value.Validate()
	}
	if req.Level.Set && !req.Level.Null {
		errs["level"] = req.Level.Value.Validate()
	}
	if req.Images.Set && !req.Images.Null {
		errs["images"] = validation.Validate(req.Images.Value)
	}

	return errs.Filter()
}

// ToDomain converts the wire patch. Nulls are carried through so the domain
// guard can reject them for non-nullable fields.
func (req *PatchPerevalRequest) ToDomain() domain.PerevalPatch {
	patch := domain.PerevalPatch{
		BeautyTitle: req.BeautyTitle,
		Title:       req.Title,
		OtherTitles: req.OtherTitles,
		Connect:     req.Connect,
	}

	if req.AddTime.Set {
		patch.AddTime = domain.Optional[time.Time]{Value: req.AddTime.Value.Time, Set: true, Null: req.AddTime.Null}
	}
	if req.Coords.Set {
		patch.Coords = domain.Optional[domain.Coords]{Value: req.Coords.Value.toDomain(), Set: true, Null: req.Coords.Null}
	}
	if req.Level.Set {
		patch.Level = domain.Optional[domain.Level]{Value: req.Level.Value.toDomain(), Set: true, Null: req.Level.Null}
	}
	if req.Images.Set {
		patch.Images = domain.Optional[[]domain.ImageUpload]{Set: true, Null: req.Images.Null}
		if !req.Images.Null {
			patch.Images.Value = imagesToDomain(req.Images.Value)
		}
	}

	return patch
}
