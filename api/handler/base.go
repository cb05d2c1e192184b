package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/jobtasks/backend/api/transport"
	"github.com/jobtasks/backend/domain"
	"github.com/jobtasks/backend/pkg/httpcontext"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload interface{}) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

// respondError renders a domain error with the documented body shape for
// its kind. Anything unclassified is reported as a store failure.
func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeBadRequest):
		h.respondJSON(ctx, http.StatusBadRequest, transport.ErrorResponse{Error: clientMessage(err)})
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		h.respondJSON(ctx, http.StatusNotFound, transport.MessageResponse{Message: clientMessage(err)})
	default:
		h.logger.Error("store operation failed", zap.Error(err))
		h.respondJSON(ctx, http.StatusInternalServerError, transport.StoreErrorResponse{
			Message: clientMessage(err),
			Error:   diagnostic(err),
		})
	}
}

func clientMessage(err error) string {
	var dErr *domain.Error
	if errors.As(err, &dErr) {
		return dErr.Message
	}
	return err.Error()
}

func diagnostic(err error) string {
	var dErr *domain.Error
	if errors.As(err, &dErr) && dErr.Err != nil {
		return dErr.Err.Error()
	}
	return err.Error()
}
