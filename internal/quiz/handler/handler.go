package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xw1nchester/stylequiz-backend/internal/apperror"
	"github.com/xw1nchester/stylequiz-backend/internal/handlers"
	"github.com/xw1nchester/stylequiz-backend/internal/quiz"
	"go.uber.org/zap"
)

var validate = validator.New()

var ErrInvalidQuizID = apperror.NewAppError("quiz id must be a valid uuid")

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockquizhandler
type Service interface {
	StartSession(ctx context.Context) (string, error)
	SaveAnswer(ctx context.Context, answer quiz.Answer) error
	SaveBrandSelection(ctx context.Context, quizID string, selection quiz.BrandSelection) (*quiz.BrandSelection, error)
	GetBrandSelection(ctx context.Context, quizID string) (*quiz.BrandSelection, error)
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
	router.Route("/quiz", func(quizRouter chi.Router) {
		quizRouter.Group(func(submitRouter chi.Router) {
			submitRouter.Use(h.rateLimitMiddleware)

			submitRouter.Post("/start", apperror.Middleware(h.startHandler))
			submitRouter.Post("/answers", apperror.Middleware(h.saveAnswerHandler))
			submitRouter.Post("/brands", apperror.Middleware(h.saveBrandSelectionHandler))
		})

		quizRouter.Get("/{quizId}/brands", apperror.Middleware(h.getBrandSelectionHandler))
	})
}

// @Tags		quiz
// @Success	200		{object}	StartResponse
// @Failure	429,500	{object}	apperror.AppError
// @Router		/quiz/start [post]
func (h *handler) startHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := h.service.StartSession(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, StartResponse{QuizID: id})

	return nil
}

// @Tags		quiz
// @Param		request	body		AnswerRequest	true	"request body"
// @Success	200		{string}	string
// @Failure	400,429,500	{object}	apperror.AppError
// @Router		/quiz/answers [post]
func (h *handler) saveAnswerHandler(w http.ResponseWriter, r *http.Request) error {
	var dto AnswerRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	if err := h.service.SaveAnswer(r.Context(), dto.ToDomain()); err != nil {
		return err
	}

	render.JSON(w, r, render.M{"status": "ok"})

	return nil
}

// @Tags		quiz
// @Param		request	body		BrandSelectionRequest	true	"request body"
// @Success	200		{object}	BrandSelectionResponse
// @Failure	400,429,500	{object}	apperror.AppError
// @Router		/quiz/brands [post]
func (h *handler) saveBrandSelectionHandler(w http.ResponseWriter, r *http.Request) error {
	var dto BrandSelectionRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Error(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	saved, err := h.service.SaveBrandSelection(r.Context(), dto.QuizID, dto.ToDomain())
	if err != nil {
		return err
	}

	render.JSON(w, r, BrandSelectionResponse{Saved: *saved})

	return nil
}

// @Tags		quiz
// @Param		quizId	path		string	true	"quiz session id"
// @Success	200		{object}	quiz.BrandSelection
// @Failure	400,500	{object}	apperror.AppError
// @Router		/quiz/{quizId}/brands [get]
func (h *handler) getBrandSelectionHandler(w http.ResponseWriter, r *http.Request) error {
	quizID := chi.URLParam(r, "quizId")
	if uuid.Validate(quizID) != nil {
		return ErrInvalidQuizID
	}

	selection, err := h.service.GetBrandSelection(r.Context(), quizID)
	if err != nil {
		return err
	}

	render.JSON(w, r, selection)

	return nil
}
