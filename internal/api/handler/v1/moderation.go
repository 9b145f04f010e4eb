package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fstr-tourism/pereval-api/internal/api/handler/v1/request"
	"github.com/fstr-tourism/pereval-api/internal/api/handler/v1/response"
	"github.com/fstr-tourism/pereval-api/internal/api/middleware"
	"github.com/fstr-tourism/pereval-api/internal/domain"
	"github.com/fstr-tourism/pereval-api/internal/service"
)

type ModerationService interface {
	SetStatus(ctx context.Context, id uint, to domain.Status) (domain.Status, error)
}

type ModerationHandler struct {
	svc ModerationService
}

func NewModerationHandler(svc ModerationService) *ModerationHandler {
	return &ModerationHandler{
		svc: svc,
	}
}

// HandleSetStatus godoc
// @Summary      Move a pereval through moderation
// @Description  Allowed transitions are new -> pending, pending -> accepted and pending -> rejected.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Param        id       path      int                     true  "Pereval ID"
// @Param        request  body      request.StatusRequest   true  "request body"
// @Success      200      {object}  response.StatusResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /moderation/submitData/{id}/status [patch]
// @Security     BearerAuth
func (h *ModerationHandler) HandleSetStatus(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.StatusRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	to := domain.Status(req.Status)
	from, err := h.svc.SetStatus(ctx.Request.Context(), id, to)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPerevalNotFound):
			response.RenderErr(ctx, response.ErrNotFound("pereval", "ID", id))
		case errors.Is(err, service.ErrInvalidStatusTransition):
			response.RenderErr(ctx, response.ErrConflict(
				fmt.Errorf("cannot move pereval %d from %s to %s", id, from, to)))
		default:
			err = fmt.Errorf("v1.HandleSetStatus -> h.svc.SetStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	zap.L().Info("pereval status changed",
		zap.Uint("pereval_id", id),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.String("moderator", ctx.GetString(middleware.ModeratorKey)),
	)

	ctx.JSON(http.StatusOK, response.StatusResponse{
		ID:         id,
		Status:     to.Label(),
		PrevStatus: from.Label(),
	})
}
