package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/stylequiz-backend/internal/apperror"
	"github.com/xw1nchester/stylequiz-backend/internal/brand"
	"github.com/xw1nchester/stylequiz-backend/internal/handlers"
	"go.uber.org/zap"
)

var (
	ErrQueryTooShort = apperror.NewAppError("query must be at least 2 characters")
	ErrInvalidTier   = apperror.NewAppError("tier must be one of: mass, premium, luxury")
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockbrandhandler
type Service interface {
	Search(query string, tier brand.Tier, region string, limit int) []brand.Summary
	Popular(tier brand.Tier, region string, limit int) []brand.Summary
	Reload(ctx context.Context) error
}

type handler struct {
	service             Service
	rateLimitMiddleware func(http.Handler) http.Handler
	adminMiddleware     func(http.Handler) http.Handler
	logger              *zap.Logger
}

func New(
	service Service,
	rateLimitMiddleware func(http.Handler) http.Handler,
	adminMiddleware func(http.Handler) http.Handler,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:             service,
		rateLimitMiddleware: rateLimitMiddleware,
		adminMiddleware:     adminMiddleware,
		logger:              logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/brands", func(brandRouter chi.Router) {
		brandRouter.Group(func(searchRouter chi.Router) {
			searchRouter.Use(h.rateLimitMiddleware)

			searchRouter.Get("/search", apperror.Middleware(h.searchHandler))
		})

		brandRouter.Get("/popular", apperror.Middleware(h.popularHandler))
	})

	router.Route("/admin/brands", func(adminRouter chi.Router) {
		adminRouter.Use(h.adminMiddleware)

		adminRouter.Post("/reload", apperror.Middleware(h.reloadHandler))
	})
}

// @Tags		brands
// @Param		q		query		string	true	"free-text query"
// @Param		tier	query		string	false	"tier filter"	Enums(mass, premium, luxury)
// @Param		region	query		string	false	"region code"
// @Param		limit	query		int		false	"max results"
// @Success	200		{object}	ItemsResponse
// @Failure	400,429	{object}	apperror.AppError
// @Router		/brands/search [get]
func (h *handler) searchHandler(w http.ResponseWriter, r *http.Request) error {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len([]rune(query)) < 2 {
		return ErrQueryTooShort
	}

	tier, err := parseTier(r)
	if err != nil {
		return err
	}

	items := h.service.Search(query, tier, r.URL.Query().Get("region"), parseLimit(r))

	render.JSON(w, r, NewItemsResponse(items))

	return nil
}

// @Tags		brands
// @Param		tier	query		string	false	"tier filter"	Enums(mass, premium, luxury)
// @Param		region	query		string	false	"region code"
// @Param		limit	query		int		false	"max results"
// @Success	200		{object}	ItemsResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/brands/popular [get]
func (h *handler) popularHandler(w http.ResponseWriter, r *http.Request) error {
	tier, err := parseTier(r)
	if err != nil {
		return err
	}

	items := h.service.Popular(tier, r.URL.Query().Get("region"), parseLimit(r))

	render.JSON(w, r, NewItemsResponse(items))

	return nil
}

// @Security	ApiKeyAuth
// @Tags		admin
// @Success	200		{string}	string
// @Failure	401,500	{object}	apperror.AppError
// @Router		/admin/brands/reload [post]
func (h *handler) reloadHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Reload(r.Context()); err != nil {
		return err
	}

	render.JSON(w, r, render.M{"status": "ok"})

	return nil
}

func parseTier(r *http.Request) (brand.Tier, error) {
	raw := r.URL.Query().Get("tier")
	if raw == "" {
		return "", nil
	}

	tier := brand.Tier(raw)
	if !tier.Valid() {
		return "", ErrInvalidTier
	}

	return tier, nil
}

func parseLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}
