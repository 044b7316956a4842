package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/stylequiz-backend/internal/apperror"
	"github.com/xw1nchester/stylequiz-backend/internal/auth"
	"github.com/xw1nchester/stylequiz-backend/internal/handlers"
	"go.uber.org/zap"
)

var validate = validator.New()

type Service interface {
	Login(ctx context.Context, password string) (string, error)
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type handler struct {
	service  Service
	tokenTTL time.Duration
	logger   *zap.Logger
}

func New(service Service, tokenTTL time.Duration, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:  service,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Post("/admin/login", apperror.Middleware(h.loginHandler))
}

// @Tags		admin
// @Param		request	body		LoginRequest	true	"request body"
// @Success	200		{object}	LoginResponse
// @Failure	400,401	{object}	apperror.AppError
// @Router		/admin/login [post]
func (h *handler) loginHandler(w http.ResponseWriter, r *http.Request) error {
	var dto LoginRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	token, err := h.service.Login(r.Context(), dto.Password)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	render.JSON(w, r, LoginResponse{Token: token})

	return nil
}
