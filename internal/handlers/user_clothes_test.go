package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-wardrobe/internal/handlers"
	"github.com/sbilibin2017/gw-wardrobe/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUserClothesHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinker := handlers.NewMockClothesLinker(ctrl)
	mockUnlinker := handlers.NewMockClothesUnlinker(ctrl)

	r := chi.NewRouter()
	handlers.RegisterUserClothesHandlers(r,
		handlers.NewLinkClothesHandler(mockLinker),
		handlers.NewUnlinkClothesHandler(mockUnlinker),
	)

	tests := []struct {
		name      string
		method    string
		path      string
		mockSetup func()
		wantCode  int
		wantBody  string
	}{
		{
			name:   "link",
			method: http.MethodPut,
			path:   "/users/1/clothes/2",
			mockSetup: func() {
				mockLinker.EXPECT().LinkClothes(gomock.Any(), int64(1), int64(2)).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "link missing user",
			method: http.MethodPut,
			path:   "/users/1/clothes/2",
			mockSetup: func() {
				mockLinker.EXPECT().LinkClothes(gomock.Any(), int64(1), int64(2)).Return(services.ErrUserNotFound)
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"User not found"}`,
		},
		{
			name:   "link missing clothes",
			method: http.MethodPut,
			path:   "/users/1/clothes/2",
			mockSetup: func() {
				mockLinker.EXPECT().LinkClothes(gomock.Any(), int64(1), int64(2)).Return(services.ErrClothesNotFound)
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Clothes not found"}`,
		},
		{
			name:     "link bad clothes id",
			method:   http.MethodPut,
			path:     "/users/1/clothes/zero",
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid clothes id"}`,
		},
		{
			name:   "unlink",
			method: http.MethodDelete,
			path:   "/users/3/clothes/4",
			mockSetup: func() {
				mockUnlinker.EXPECT().UnlinkClothes(gomock.Any(), int64(3), int64(4)).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:     "unlink bad user id",
			method:   http.MethodDelete,
			path:     "/users/0/clothes/4",
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Invalid user id"}`,
		},
		{
			name:   "unlink internal error",
			method: http.MethodDelete,
			path:   "/users/3/clothes/4",
			mockSetup: func() {
				mockUnlinker.EXPECT().UnlinkClothes(gomock.Any(), int64(3), int64(4)).Return(errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockSetup != nil {
				tt.mockSetup()
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			} else {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
