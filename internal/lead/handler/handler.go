package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/stylequiz-backend/internal/apperror"
	"github.com/xw1nchester/stylequiz-backend/internal/handlers"
	"github.com/xw1nchester/stylequiz-backend/internal/lead"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockleadhandler
type Service interface {
	CreateLead(ctx context.Context, data lead.Lead) (*lead.Lead, error)
	Subscribe(ctx context.Context, email string) error
}

type handler struct {
	service             Service
	rateLimitMiddleware func(http.Handler) http.Handler
	logger              *zap.Logger
}

func New(
	service Service,
	rateLimitMiddleware func(http.Handler) http.Handler,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:             service,
		rateLimitMiddleware: rateLimitMiddleware,
		logger:              logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Group(func(submitRouter chi.Router) {
		submitRouter.Use(h.rateLimitMiddleware)

		submitRouter.Post("/leads", apperror.Middleware(h.createLeadHandler))
		submitRouter.Post("/subscribe", apperror.Middleware(h.subscribeHandler))
	})
}

// @Tags		leads
// @Param		request	body		LeadRequest	true	"request body"
// @Success	200		{object}	LeadResponse
// @Failure	400,429,500	{object}	apperror.AppError
// @Router		/leads [post]
func (h *handler) createLeadHandler(w http.ResponseWriter, r *http.Request) error {
	var dto LeadRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	created, err := h.service.CreateLead(r.Context(), dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, LeadResponse{Lead: *created})

	return nil
}

// @Tags		leads
// @Param		request	body		SubscribeRequest	true	"request body"
// @Success	200		{string}	string
// @Failure	400,429,500	{object}	apperror.AppError
// @Router		/subscribe [post]
func (h *handler) subscribeHandler(w http.ResponseWriter, r *http.Request) error {
	var dto SubscribeRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if err := h.service.Subscribe(r.Context(), dto.Email); err != nil {
		return err
	}

	render.JSON(w, r, render.M{"status": "ok"})

	return nil
}
