package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fstr-tourism/pereval-api/internal/domain"
	"github.com/fstr-tourism/pereval-api/internal/service"
)

const createBody = `{
	"beauty_title": "пер. ",
	"title": "Пхия",
	"other_titles": "Триев",
	"connect": "",
	"add_time": "2021-09-22T13:18:13+03:00",
	"user": {"email": "qwerty@mail.ru", "fam": "Пупкин", "name": "Василий", "otc": "Иванович", "phone": "+7 555 55 55"},
	"coords": {"latitude": "45.3842", "longitude": "7.1525", "height": "1200"},
	"level": {"winter": "", "summer": "1А", "autumn": "1А", "spring": ""},
	"images": [{"data": "aW1hZ2U=", "title": "Седловина"}, {"data": "aW1hZ2U=", "title": "Подъём"}]
}`

func init() {
	gin.SetMode(gin.TestMode)
}

func newPerevalRouter(svc PerevalService) *gin.Engine {
	h := NewPerevalHandler(svc)

	r := gin.New()
	r.POST("/submitData", h.HandleCreate)
	r.GET("/submitData/", h.HandleGetByEmail)
	r.GET("/submitData/:id", h.HandleGetByID)
	r.PATCH("/submitData/:id", h.HandlePatch)

	return r
}

func doRequest(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func TestPerevalHandler_HandleCreate(t *testing.T) {
	svc := new(mockPerevalService)
	r := newPerevalRouter(svc)

	svc.On("CreatePass", mock.Anything, mock.MatchedBy(func(p domain.NewPereval) bool {
		_, offset := p.AddTime.Zone()
		return p.Title == "Пхия" &&
			p.User.Surname == "Пупкин" &&
			*p.User.Patronymic == "Иванович" &&
			p.Coords == domain.Coords{Latitude: 45.3842, Longitude: 7.1525, Height: 1200} &&
			*p.Level.Summer == "1А" &&
			len(p.Images) == 2 && p.Images[0].Data == "aW1hZ2U=" &&
			offset == 3*60*60
	})).Return(uint(42), nil).Once()

	w := doRequest(r, http.MethodPost, "/submitData", createBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": 200, "message": null, "id": 42}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestPerevalHandler_HandleCreate_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"title":`},
		{"missing user", `{"beauty_title": "a", "title": "b", "add_time": "2021-09-22 13:18:13", "coords": {"latitude": 1, "longitude": 2, "height": 3}, "level": {}, "images": []}`},
		{"bad email", strings.Replace(createBody, "qwerty@mail.ru", "qwerty", 1)},
		{"bad coords", strings.Replace(createBody, `"45.3842"`, `"north"`, 1)},
		{"latitude out of range", strings.Replace(createBody, `"45.3842"`, `"145.3842"`, 1)},
		{"bad add_time", strings.Replace(createBody, "2021-09-22T13:18:13+03:00", "yesterday", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockPerevalService)
			r := newPerevalRouter(svc)

			w := doRequest(r, http.MethodPost, "/submitData", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, float64(400), body["status"])
			assert.Nil(t, body["id"])
			assert.NotEmpty(t, body["message"])
			svc.AssertNotCalled(t, "CreatePass", mock.Anything, mock.Anything)
		})
	}
}

func TestPerevalHandler_HandleCreate_StorageFault(t *testing.T) {
	svc := new(mockPerevalService)
	r := newPerevalRouter(svc)

	svc.On("CreatePass", mock.Anything, mock.Anything).Return(uint(0), errors.New("connection refused")).Once()

	w := doRequest(r, http.MethodPost, "/submitData", createBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(500), body["status"])
	assert.Contains(t, body["message"], "Ошибка подключения к базе данных")
}

func TestPerevalHandler_HandleCreate_InvalidPereval(t *testing.T) {
	svc := new(mockPerevalService)
	r := newPerevalRouter(svc)

	svc.On("CreatePass", mock.Anything, mock.Anything).
		Return(uint(0), fmt.Errorf("%w: Title: cannot be blank", service.ErrInvalidPereval)).Once()

	w := doRequest(r, http.MethodPost, "/submitData", createBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPerevalHandler_HandleGetByID(t *testing.T) {
	svc := new(mockPerevalService)
	r := newPerevalRouter(svc)
	summer := "1А"

	svc.On("GetPassByID", mock.Anything, uint(42)).Return(domain.Pereval{
		ID:          42,
		BeautyTitle: "пер. ",
		Title:       "Пхия",
		AddTime:     time.Date(2021, 9, 22, 13, 18, 13, 0, time.UTC),
		Level:       domain.Level{Summer: &summer},
		Status:      domain.StatusNew,
		User:        domain.User{Email: "qwerty@mail.ru", Surname: "Пупкин", Name: "Василий", Phone: "+7 555 55 55"},
		Coords:      domain.Coords{Latitude: 45.3842, Longitude: 7.1525, Height: 1200},
		Images:      []domain.Image{{Title: "Седловина", Data: []byte("image")}},
	}, nil).Once()

	w := doRequest(r, http.MethodGet, "/submitData/42", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 42,
		"status": "Ожидает модерации",
		"beauty_title": "пер. ",
		"title": "Пхия",
		"other_titles": null,
		"connect": null,
		"add_time": "2021-09-22T13:18:13",
		"user": {"email": "qwerty@mail.ru", "fam": "Пупкин", "name": "Василий", "otc": null, "phone": "+7 555 55 55"},
		"coords": {"latitude": 45.3842, "longitude": 7.1525, "height": 1200},
		"level_winter": null,
		"level_summer": "1А",
		"level_autumn": null,
		"level_spring": null,
		"images": [{"data": "aW1hZ2U=", "title": "Седловина"}]
	}`, w.Body.String())
}

func TestPerevalHandler_HandleGetByID_NotFound(t *testing.T) {
	svc := new(mockPerevalService)
	r := newPerevalRouter(svc)

	svc.On("GetPassByID", mock.Anything, uint(7)).
		Return(domain.Pereval{}, fmt.Errorf("s.repo.FindByID -> %w", service.ErrPerevalNotFound)).Once()

	w := doRequest(r, http.MethodGet, "/submitData/7", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(404), decodeBody(t, w)["status"])
}

func TestPerevalHandler_HandleGetByID_BadID(t *testing.T) {
	svc := new(mockPerevalService)
	r := newPerevalRouter(svc)

	w := doRequest(r, http.MethodGet, "/submitData/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetPassByID", mock.Anything, mock.Anything)
}

func TestPerevalHandler_HandleGetByEmail(t *testing.T) {
	svc := new(mockPerevalService)
	r := newPerevalRouter(svc)

	svc.On("GetPassesByEmail", mock.Anything, "qwerty@mail.ru").
		Return([]domain.Pereval{{ID: 1, Status: domain.StatusAccepted}, {ID: 2, Status: domain.StatusNew}}, nil).Once()

	w := doRequest(r, http.MethodGet, "/submitData/?user__email=qwerty@mail.ru", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Принят", body[0]["status"])
	assert.Equal(t, []interface{}{}, body[0]["images"])
}

func TestPerevalHandler_HandleGetByEmail_Empty(t *testing.T) {
	svc := new(mockPerevalService)
	r := newPerevalRouter(svc)

	svc.On("GetPassesByEmail", mock.Anything, "qwerty@mail.ru").Return([]domain.Pereval{}, nil).Once()

	w := doRequest(r, http.MethodGet, "/submitData/?user__email=qwerty@mail.ru", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPerevalHandler_HandleGetByEmail_UnknownEmail(t *testing.T) {
	svc := new(mockPerevalService)
	r := newPerevalRouter(svc)

	svc.On("GetPassesByEmail", mock.Anything, "unknown@x.com").
		Return([]domain.Pereval(nil), fmt.Errorf("s.userRepo.FindByEmail -> %w", service.ErrUserNotFound)).Once()

	w := doRequest(r, http.MethodGet, "/submitData/?user__email=unknown@x.com", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPerevalHandler_HandleGetByEmail_InvalidEmail(t *testing.T) {
	svc := new(mockPerevalService)
	r := newPerevalRouter(svc)

	w := doRequest(r, http.MethodGet, "/submitData/?user__email=nope", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetPassesByEmail", mock.Anything, mock.Anything)
}

func TestPerevalHandler_HandlePatch(t *testing.T) {
	tests := []struct {
		name     string
		result   domain.UpdateResult
		wantCode int
		wantBody string
	}{
		{
			name:     "applied",
			result:   domain.UpdateResult{Outcome: domain.UpdateApplied, Status: domain.StatusNew},
			wantCode: http.StatusOK,
			wantBody: `{"state": 1, "message": null}`,
		},
		{
			name:     "not found",
			result:   domain.UpdateResult{Outcome: domain.UpdateNotFound, Message: "Перевал не найден."},
			wantCode: http.StatusNotFound,
			wantBody: `{"state": 0, "message": "Перевал не найден."}`,
		},
		{
			name:     "rejected",
			result:   domain.UpdateResult{Outcome: domain.UpdateRejected, Status: domain.StatusAccepted, Message: "Редактирование невозможно."},
			wantCode: http.StatusConflict,
			wantBody: `{"state": 0, "message": "Редактирование невозможно."}`,
		},
		{
			name:     "failed",
			result:   domain.UpdateResult{Outcome: domain.UpdateFailed, Message: "Ошибка обновления: boom"},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"state": 0, "message": "Ошибка обновления: boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockPerevalService)
			r := newPerevalRouter(svc)

			svc.On("UpdatePass", mock.Anything, uint(5), domain.PerevalPatch{Title: domain.Some("X")}).
				Return(tt.result).Once()

			w := doRequest(r, http.MethodPatch, "/submitData/5", `{"title": "X"}`)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestPerevalHandler_HandlePatch_ConvertsFields(t *testing.T) {
	svc := new(mockPerevalService)
	r := newPerevalRouter(svc)

	svc.On("UpdatePass", mock.Anything, uint(5), mock.MatchedBy(func(p domain.PerevalPatch) bool {
		return !p.Title.Set &&
			p.Connect.Set && p.Connect.Null &&
			p.Coords.Set && p.Coords.Value == domain.Coords{Latitude: 1.5, Longitude: 2.5, Height: 300} &&
			p.Level.Set && *p.Level.Value.Winter == "2А" &&
			p.Images.Set && len(p.Images.Value) == 1 && p.Images.Value[0].Title == "new" &&
			p.AddTime.Set && p.AddTime.Value.Equal(time.Date(2021, 9, 22, 10, 18, 13, 0, time.UTC))
	})).Return(domain.UpdateResult{Outcome: domain.UpdateApplied}).Once()

	w := doRequest(r, http.MethodPatch, "/submitData/5", `{
		"user": null,
		"connect": null,
		"add_time": "2021-09-22T13:18:13+03:00",
		"coords": {"latitude": 1.5, "longitude": "2.5", "height": 300},
		"level": {"winter": "2А"},
		"images": [{"title": "new", "data": "aW1n"}]
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestPerevalHandler_HandlePatch_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"user given", `{"user": {"email": "other@mail.ru"}}`},
		{"unknown field", `{"status": 3}`},
		{"malformed", `{"title": }`},
		{"partial coords", `{"coords": {"latitude": 1}}`},
		{"image without title", `{"images": [{"data": "aW1n"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockPerevalService)
			r := newPerevalRouter(svc)

			w := doRequest(r, http.MethodPatch, "/submitData/5", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, float64(0), body["state"])
			assert.NotEmpty(t, body["message"])
			svc.AssertNotCalled(t, "UpdatePass", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
