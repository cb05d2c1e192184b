package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/jobtasks/backend/api/transport"
	"github.com/jobtasks/backend/pkg/httpcontext"
	userUC "github.com/jobtasks/backend/usecase/user"
)

type UserHandler struct {
	baseHandler
	uc *userUC.UseCase
}

func NewUserHandler(uc *userUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Register a user
// @Tags users
// @Router /users [post]
func (h *UserHandler) Register(ctx *fasthttp.RequestCtx) {
	var req transport.UserRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.ErrorResponse{Error: "Invalid request payload"})
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Register(stdCtx, userUC.RegisterInput{
		UID:         req.UID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if result.AlreadyExists {
		h.respondJSON(ctx, http.StatusOK, transport.MessageResponse{Message: "User already exists"})
		return
	}
	h.respondJSON(ctx, http.StatusCreated, transport.UserCreatedResponse{InsertedID: result.InsertedID.Hex()})
}
