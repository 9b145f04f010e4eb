package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"go.uber.org/zap"

	"github.com/fstr-tourism/pereval-api/internal/api/handler/v1/request"
	"github.com/fstr-tourism/pereval-api/internal/api/handler/v1/response"
	"github.com/fstr-tourism/pereval-api/internal/domain"
	"github.com/fstr-tourism/pereval-api/internal/service"
)

const (
	msgDatabaseError = "Ошибка подключения к базе данных: %v"
)

type PerevalService interface {
	CreatePass(ctx context.Context, p domain.NewPereval) (uint, error)
	GetPassByID(ctx context.Context, id uint) (domain.Pereval, error)
	GetPassesByEmail(ctx context.Context, email string) ([]domain.Pereval, error)
	UpdatePass(ctx context.Context, id uint, patch domain.PerevalPatch) domain.UpdateResult
}

type PerevalHandler struct {
	svc PerevalService
}

func NewPerevalHandler(svc PerevalService) *PerevalHandler {
	return &PerevalHandler{
		svc: svc,
	}
}

// HandleCreate godoc
// @Summary      Submit a new pereval
// @Description  Stores the pass with its coordinates and images. The submitter is created on first use and reused afterwards.
// @Tags         submitData
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreatePerevalRequest  true  "request body"
// @Success      200      {object}  response.CreateResponse
// @Failure      400      {object}  response.CreateResponse
// @Failure      500      {object}  response.CreateResponse
// @Router       /submitData [post]
func (h *PerevalHandler) HandleCreate(ctx *gin.Context) {
	var req request.CreatePerevalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.CreateFailed(http.StatusBadRequest, err.Error()))
		return
	}

	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, response.CreateFailed(http.StatusBadRequest, err.Error()))
		return
	}

	id, err := h.svc.CreatePass(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrInvalidPereval) {
			ctx.JSON(http.StatusBadRequest, response.CreateFailed(http.StatusBadRequest, err.Error()))
			return
		}

		zap.L().Error("v1.HandleCreate -> h.svc.CreatePass", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError,
			response.CreateFailed(http.StatusInternalServerError, fmt.Sprintf(msgDatabaseError, err)))
		return
	}

	ctx.JSON(http.StatusOK, response.Created(id))
}

// HandleGetByID godoc
// @Summary      Get a pereval
// @Tags         submitData
// @Produce      json
// @Param        id   path      int  true  "Pereval ID"
// @Success      200  {object}  response.PerevalResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /submitData/{id} [get]
func (h *PerevalHandler) HandleGetByID(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	pereval, err := h.svc.GetPassByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPerevalNotFound) {
			response.RenderErr(ctx, response.ErrNotFoundMessage(
				fmt.Sprintf("Перевал с id %d в базе отсутствует.", id)))
			return
		}

		err = fmt.Errorf("v1.HandleGetByID -> h.svc.GetPassByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPerevalResponse(pereval))
}

// HandleGetByEmail godoc
// @Summary      List perevals of a submitter
// @Tags         submitData
// @Produce      json
// @Param        user__email  query     string  true  "submitter email"
// @Success      200          {array}   response.PerevalResponse
// @Failure      400          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /submitData/ [get]
func (h *PerevalHandler) HandleGetByEmail(ctx *gin.Context) {
	email := ctx.Query("user__email")
	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("user__email: %w", err)))
		return
	}

	perevals, err := h.svc.GetPassesByEmail(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFoundMessage(
				fmt.Sprintf("Пользователь с email %s не найден.", email)))
			return
		}

		err = fmt.Errorf("v1.HandleGetByEmail -> h.svc.GetPassesByEmail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewPerevalListResponse(perevals))
}

// HandlePatch godoc
// @Summary      Edit a pereval awaiting moderation
// @Description  Merge patch. Only absent keys are left untouched; the submitter cannot be changed.
// @Tags         submitData
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "Pereval ID"
// @Param        request  body      request.PatchPerevalRequest   true  "request body"
// @Success      200      {object}  response.PatchResponse
// @Failure      400      {object}  response.PatchResponse
// @Failure      404      {object}  response.PatchResponse
// @Failure      409      {object}  response.PatchResponse
// @Failure      500      {object}  response.PatchResponse
// @Router       /submitData/{id} [patch]
func (h *PerevalHandler) HandlePatch(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		renderPatchErr(ctx, http.StatusBadRequest, err)
		return
	}

	req, err := request.DecodePatch(ctx.Request.Body)
	if err != nil {
		renderPatchErr(ctx, http.StatusBadRequest, err)
		return
	}

	if err = req.Validate(); err != nil {
		renderPatchErr(ctx, http.StatusBadRequest, err)
		return
	}

	result := h.svc.UpdatePass(ctx.Request.Context(), id, req.ToDomain())
	ctx.JSON(patchStatusCode(result.Outcome), response.Patched(result))
}

func renderPatchErr(ctx *gin.Context, code int, err error) {
	ctx.JSON(code, response.Patched(domain.UpdateResult{
		Outcome: domain.UpdateInvalid,
		Message: err.Error(),
	}))
}

func patchStatusCode(outcome domain.UpdateOutcome) int {
	switch outcome {
	case domain.UpdateApplied:
		return http.StatusOK
	case domain.UpdateInvalid:
		return http.StatusBadRequest
	case domain.UpdateNotFound:
		return http.StatusNotFound
	case domain.UpdateRejected:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid pereval ID: %q", raw)
	}

	return uint(id), nil
}
