package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/stylequiz-backend/internal/apperror"
	"github.com/xw1nchester/stylequiz-backend/internal/handlers"
	"github.com/xw1nchester/stylequiz-backend/internal/slot"
	"go.uber.org/zap"
)

// Uploaded images are small landing page assets.
const maxUploadSize = 10 << 20

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockhandler
type Service interface {
	GetSlots(ctx context.Context) (map[string]string, error)
	UploadImage(ctx context.Context, key string, reader io.Reader, size int64, contentType string, fileExtension string) (*slot.Slot, error)
}

type SlotsResponse struct {
	Slots map[string]string `json:"slots"`
}

type handler struct {
	service         Service
	adminMiddleware func(http.Handler) http.Handler
	logger          *zap.Logger
}

func New(
	service Service,
	adminMiddleware func(http.Handler) http.Handler,
	logger *zap.Logger,
) handlers.Handler {
	return &handler{
		service:         service,
		adminMiddleware: adminMiddleware,
		logger:          logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/slots", apperror.Middleware(h.slotsHandler))

	router.Group(func(adminRouter chi.Router) {
		adminRouter.Use(h.adminMiddleware)

		adminRouter.Post("/admin/slots/{key}", apperror.Middleware(h.uploadHandler))
	})
}

// @Tags		slots
// @Success	200	{object}	SlotsResponse
// @Router		/slots [get]
func (h *handler) slotsHandler(w http.ResponseWriter, r *http.Request) error {
	slots, err := h.service.GetSlots(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, SlotsResponse{Slots: slots})

	return nil
}

// @Tags			admin
// @Accept			multipart/form-data
// @Param			key		path		string	true	"slot key"
// @Param			file	formData	file	true	"image file"
// @Success		200		{object}	slot.Slot
// @Failure		400,401	{object}	apperror.AppError
// @Router			/admin/slots/{key} [post]
func (h *handler) uploadHandler(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		return apperror.NewAppError(fmt.Sprintf("failed to retrieve file: %s", err.Error()))
	}
	defer file.Close()

	extension := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")

	saved, err := h.service.UploadImage(
		r.Context(),
		chi.URLParam(r, "key"),
		file,
		header.Size,
		header.Header.Get("Content-Type"),
		extension,
	)
	if err != nil {
		return err
	}

	render.JSON(w, r, saved)

	return nil
}
