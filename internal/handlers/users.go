package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-wardrobe/internal/logger"
	"github.com/sbilibin2017/gw-wardrobe/internal/models"
	"github.com/sbilibin2017/gw-wardrobe/internal/services"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// UserClothesGetter returns the read projection of a user.
type UserClothesGetter interface {
	GetUserWithClothes(ctx context.Context, userID int64) (*models.UserClothesResponse, error)
}

// NewGetUserHandler returns an HTTP handler for the user read projection.
// @Summary Get a user with its clothes
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserClothesResponse
// @Failure 400 {object} models.ErrorResponse "Invalid user id"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserClothesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := idParam(r, "id")
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		user, err := svc.GetUserWithClothes(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// RegisterGetUserHandler registers the user read route
func RegisterGetUserHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/users/{id}", h)
}
