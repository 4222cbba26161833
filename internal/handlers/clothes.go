package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-wardrobe/internal/logger"
	"github.com/sbilibin2017/gw-wardrobe/internal/models"
	"github.com/sbilibin2017/gw-wardrobe/internal/services"
	"github.com/sbilibin2017/gw-wardrobe/internal/validation"
)

//go:generate mockgen -source=clothes.go -destination=mock_clothes.go -package=handlers

// ClothesCreator stores clothing items.
type ClothesCreator interface {
	CreateClothes(ctx context.Context, req models.ClothesRequest) (*models.ClothesResponse, error)
}

// ClothesGetter reads clothing items.
type ClothesGetter interface {
	GetClothes(ctx context.Context, id int64) (*models.ClothesResponse, error)
}

// NewCreateClothesHandler returns an HTTP handler that adds a clothing item to the catalog.
// @Summary Create a clothing item
// @Description Color defaults to white and size to s when omitted.
// @Tags clothes
// @Accept json
// @Produce json
// @Param clothesRequest body models.ClothesRequest true "Clothing item"
// @Success 201 {object} models.ClothesResponse
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /clothes [post]
func NewCreateClothesHandler(svc ClothesCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeReport(w, http.StatusBadRequest, validation.Report{
				validation.SchemaField: {validation.MsgInvalidInput},
			})
			return
		}

		req, report := validation.DecodeClothes(raw)
		if !report.Empty() {
			writeReport(w, http.StatusBadRequest, report)
			return
		}

		if report := validation.ValidateClothes(req); !report.Empty() {
			writeReport(w, http.StatusBadRequest, report)
			return
		}

		item, err := svc.CreateClothes(r.Context(), req)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusCreated, item)
	}
}

// NewGetClothesHandler returns an HTTP handler that reads a clothing item.
// @Summary Get a clothing item
// @Tags clothes
// @Produce json
// @Param id path int true "Clothes ID"
// @Success 200 {object} models.ClothesResponse
// @Failure 400 {object} models.ErrorResponse "Invalid clothes id"
// @Failure 404 {object} models.ErrorResponse "Clothes not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /clothes/{id} [get]
func NewGetClothesHandler(svc ClothesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid clothes id")
			return
		}

		item, err := svc.GetClothes(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrClothesNotFound):
				writeError(w, http.StatusNotFound, "Clothes not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

// RegisterCreateClothesHandler registers the catalog create route
func RegisterCreateClothesHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/clothes", h)
}

// RegisterGetClothesHandler registers the catalog read route
func RegisterGetClothesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/clothes/{id}", h)
}
