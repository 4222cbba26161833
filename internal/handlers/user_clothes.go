package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-wardrobe/internal/logger"
	"github.com/sbilibin2017/gw-wardrobe/internal/services"
)

//go:generate mockgen -source=user_clothes.go -destination=mock_user_clothes.go -package=handlers

// ClothesLinker associates clothing items with users.
type ClothesLinker interface {
	LinkClothes(ctx context.Context, userID, clothesID int64) error
}

// ClothesUnlinker removes clothing items from users.
type ClothesUnlinker interface {
	UnlinkClothes(ctx context.Context, userID, clothesID int64) error
}

// NewLinkClothesHandler returns an HTTP handler that adds a clothing item to a user.
// @Summary Link a clothing item to a user
// @Description Linking an already linked item succeeds without changes.
// @Tags users
// @Param id path int true "User ID"
// @Param clothesID path int true "Clothes ID"
// @Success 204 "Linked"
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 404 {object} models.ErrorResponse "User or clothes not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id}/clothes/{clothesID} [put]
func NewLinkClothesHandler(svc ClothesLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, clothesID, ok := linkParams(w, r)
		if !ok {
			return
		}

		if err := svc.LinkClothes(r.Context(), userID, clothesID); err != nil {
			writeLinkError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewUnlinkClothesHandler returns an HTTP handler that removes a clothing item from a user.
// @Summary Unlink a clothing item from a user
// @Description Unlinking an item that is not linked succeeds.
// @Tags users
// @Param id path int true "User ID"
// @Param clothesID path int true "Clothes ID"
// @Success 204 "Unlinked"
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id}/clothes/{clothesID} [delete]
func NewUnlinkClothesHandler(svc ClothesUnlinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, clothesID, ok := linkParams(w, r)
		if !ok {
			return
		}

		if err := svc.UnlinkClothes(r.Context(), userID, clothesID); err != nil {
			writeLinkError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func linkParams(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return 0, 0, false
	}
	clothesID, ok := idParam(r, "clothesID")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid clothes id")
		return 0, 0, false
	}
	return userID, clothesID, true
}

func writeLinkError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrClothesNotFound):
		writeError(w, http.StatusNotFound, "Clothes not found")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}

// RegisterUserClothesHandlers registers the link and unlink routes
func RegisterUserClothesHandlers(r chi.Router, link, unlink http.HandlerFunc) {
	r.Put("/users/{id}/clothes/{clothesID}", link)
	r.Delete("/users/{id}/clothes/{clothesID}", unlink)
}
