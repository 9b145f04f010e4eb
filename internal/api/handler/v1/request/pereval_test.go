package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRequest_Validate_Phone(t *testing.T) {
	valid := []string{"+7 555 55 55", "89031234567", "+7 (903) 123-45-67", "8.903.123.45.67"}
	invalid := []string{"1234", "phone", "+7 903 abc 45 67", "++79031234567", "+7 903 123 45 67 89 01 23 45"}

	for _, phone := range valid {
		req := UserRequest{Email: "qwerty@mail.ru", Fam: "Пупкин", Name: "Василий", Phone: phone}
		assert.NoError(t, req.Validate(), phone)
	}
	for _, phone := range invalid {
		req := UserRequest{Email: "qwerty@mail.ru", Fam: "Пупкин", Name: "Василий", Phone: phone}
		assert.Error(t, req.Validate(), phone)
	}
}

func TestLevelRequest_Validate(t *testing.T) {
	long := "1А1А1А1"
	short := "3Б*"

	assert.NoError(t, LevelRequest{Summer: &short}.Validate())
	assert.Error(t, LevelRequest{Winter: &long}.Validate())
}

func TestDecodePatch(t *testing.T) {
	req, err := DecodePatch(strings.NewReader(`{"title": "X", "other_titles": null, "user": null}`))
	require.NoError(t, err)

	assert.True(t, req.Title.Set)
	assert.Equal(t, "X", req.Title.Value)
	assert.True(t, req.OtherTitles.Set)
	assert.True(t, req.OtherTitles.Null)
	assert.True(t, req.User.Set)
	assert.True(t, req.User.Null)
	assert.False(t, req.Coords.Set)
	require.NoError(t, req.Validate())

	patch := req.ToDomain()
	assert.True(t, patch.Title.Set)
	assert.True(t, patch.OtherTitles.Null)
	assert.False(t, patch.Coords.Set)
	assert.False(t, patch.Images.Set)
}

func TestDecodePatch_Rejects(t *testing.T) {
	_, err := DecodePatch(strings.NewReader(`{"status": 3}`))
	assert.Error(t, err)

	_, err = DecodePatch(strings.NewReader(`{"title": "X"} {"title": "Y"}`))
	assert.Error(t, err)

	req, err := DecodePatch(strings.NewReader(`{"user": {"email": "a@b.c"}}`))
	require.NoError(t, err)
	assert.Error(t, req.Validate())
}

func TestPatchPerevalRequest_ToDomain_NullImages(t *testing.T) {
	req, err := DecodePatch(strings.NewReader(`{"images": null, "coords": null}`))
	require.NoError(t, err)
	require.NoError(t, req.Validate())

	patch := req.ToDomain()

	assert.True(t, patch.Images.Set)
	assert.True(t, patch.Images.Null)
	assert.True(t, patch.Coords.Set)
	assert.True(t, patch.Coords.Null)
	assert.Error(t, patch.Validate())
}

func TestCreatePerevalRequest_ToDomain(t *testing.T) {
	lat, lon, height := FlexFloat(45.3842), FlexFloat(7.1525), FlexInt(1200)
	otc := "Иванович"
	req := CreatePerevalRequest{
		BeautyTitle: "пер. ",
		Title:       "Пхия",
		User:        &UserRequest{Email: "qwerty@mail.ru", Fam: "Пупкин", Name: "Василий", Otc: &otc, Phone: "+7 555 55 55"},
		Coords:      &CoordsRequest{Latitude: &lat, Longitude: &lon, Height: &height},
		Level:       &LevelRequest{},
		Images:      []ImageRequest{{Data: "aW1n", Title: "a"}},
	}

	p := req.ToDomain()

	assert.Equal(t, "Пупкин", p.User.Surname)
	assert.Equal(t, &otc, p.User.Patronymic)
	assert.Equal(t, 45.3842, p.Coords.Latitude)
	assert.Equal(t, 1200, p.Coords.Height)
	assert.True(t, p.AddTime.IsZero())
	require.Len(t, p.Images, 1)
	assert.Equal(t, "aW1n", p.Images[0].Data)
}
