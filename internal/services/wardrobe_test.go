package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-wardrobe/internal/models"
	"github.com/sbilibin2017/gw-wardrobe/internal/repositories"
	"github.com/sbilibin2017/gw-wardrobe/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wardrobeMocks struct {
	reader  *services.MockUserClothesReader
	clothes *services.MockClothesStore
	links   *services.MockUserClothesWriter
}

func newWardrobeService(t *testing.T) (*services.WardrobeService, wardrobeMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := wardrobeMocks{
		reader:  services.NewMockUserClothesReader(ctrl),
		clothes: services.NewMockClothesStore(ctrl),
		links:   services.NewMockUserClothesWriter(ctrl),
	}
	return services.NewWardrobeService(m.reader, m.clothes, m.links), m
}

func TestWardrobeService_GetUserWithClothes(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		stored    *models.UserClothesDB
		readerErr error
		want      *models.UserClothesResponse
		wantErr   error
	}{
		{
			name: "user with clothes",
			stored: &models.UserClothesDB{
				ID:       1,
				FullName: "Jane Doe",
				Clothes: []models.ClothesDB{
					{ID: 3, Name: "Dress", Color: models.ColorPink, Size: models.SizeM, Photo: "p.jpg", CreatedOn: created},
				},
			},
			want: &models.UserClothesResponse{
				ID:       1,
				FullName: "Jane Doe",
				Clothes: []models.ClothesResponse{
					{ID: 3, Name: "Dress", Color: models.ColorPink, Size: models.SizeM, Photo: "p.jpg", CreatedOn: created},
				},
			},
		},
		{
			name:   "user without clothes",
			stored: &models.UserClothesDB{ID: 2, FullName: "John Roe"},
			want: &models.UserClothesResponse{
				ID:       2,
				FullName: "John Roe",
				Clothes:  []models.ClothesResponse{},
			},
		},
		{
			name:      "missing user",
			readerErr: repositories.ErrNotFound,
			wantErr:   services.ErrUserNotFound,
		},
		{
			name:      "reader failure",
			readerErr: errors.New("connection reset"),
			wantErr:   errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newWardrobeService(t)
			m.reader.EXPECT().GetWithClothes(gomock.Any(), int64(1)).Return(tt.stored, tt.readerErr)

			got, err := svc.GetUserWithClothes(context.Background(), 1)
			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got.Clothes)
		})
	}
}

func TestWardrobeService_CreateClothes(t *testing.T) {
	tests := []struct {
		name      string
		req       models.ClothesRequest
		wantColor models.Color
		wantSize  models.Size
	}{
		{
			name:      "explicit attributes",
			req:       models.ClothesRequest{Name: "Coat", Color: "black", Size: "xl", Photo: "c.jpg"},
			wantColor: models.ColorBlack,
			wantSize:  models.SizeXL,
		},
		{
			name:      "defaults applied",
			req:       models.ClothesRequest{Name: "Tee", Photo: "t.jpg"},
			wantColor: models.DefaultColor,
			wantSize:  models.DefaultSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newWardrobeService(t)
			m.clothes.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, item *models.ClothesDB) error {
					assert.Equal(t, tt.wantColor, item.Color)
					assert.Equal(t, tt.wantSize, item.Size)
					item.ID = 11
					return nil
				})

			got, err := svc.CreateClothes(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, int64(11), got.ID)
			assert.Equal(t, tt.req.Name, got.Name)
			assert.Equal(t, tt.wantColor, got.Color)
			assert.Equal(t, tt.wantSize, got.Size)
		})
	}
}

func TestWardrobeService_CreateClothes_Errors(t *testing.T) {
	t.Run("unknown color", func(t *testing.T) {
		svc, _ := newWardrobeService(t)
		_, err := svc.CreateClothes(context.Background(), models.ClothesRequest{Name: "x", Color: "green", Photo: "p"})
		assert.Error(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, m := newWardrobeService(t)
		m.clothes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		_, err := svc.CreateClothes(context.Background(), models.ClothesRequest{Name: "x", Photo: "p"})
		assert.EqualError(t, err, "insert failed")
	})
}

func TestWardrobeService_GetClothes(t *testing.T) {
	tests := []struct {
		name     string
		stored   *models.ClothesDB
		storeErr error
		wantErr  error
	}{
		{name: "found", stored: &models.ClothesDB{ID: 4, Name: "Hat", Color: models.ColorRed, Size: models.SizeS}},
		{name: "not found", storeErr: repositories.ErrNotFound, wantErr: services.ErrClothesNotFound},
		{name: "store failure", storeErr: errors.New("boom"), wantErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newWardrobeService(t)
			m.clothes.EXPECT().GetByID(gomock.Any(), int64(4)).Return(tt.stored, tt.storeErr)

			got, err := svc.GetClothes(context.Background(), 4)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Hat", got.Name)
			assert.Equal(t, models.ColorRed, got.Color)
		})
	}
}

func TestWardrobeService_LinkClothes(t *testing.T) {
	tests := []struct {
		name          string
		userExists    bool
		clothesExists bool
		linkErr       error
		wantErr       error
	}{
		{name: "linked", userExists: true, clothesExists: true},
		{name: "missing user", userExists: false, wantErr: services.ErrUserNotFound},
		{name: "missing clothes", userExists: true, clothesExists: false, wantErr: services.ErrClothesNotFound},
		{name: "link failure", userExists: true, clothesExists: true, linkErr: errors.New("boom"), wantErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newWardrobeService(t)
			m.links.EXPECT().UserExists(gomock.Any(), int64(1)).Return(tt.userExists, nil)
			if tt.userExists {
				m.links.EXPECT().ClothesExists(gomock.Any(), int64(2)).Return(tt.clothesExists, nil)
			}
			if tt.userExists && tt.clothesExists {
				m.links.EXPECT().Link(gomock.Any(), int64(1), int64(2)).Return(tt.linkErr)
			}

			err := svc.LinkClothes(context.Background(), 1, 2)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWardrobeService_UnlinkClothes(t *testing.T) {
	t.Run("unlinked", func(t *testing.T) {
		svc, m := newWardrobeService(t)
		m.links.EXPECT().UserExists(gomock.Any(), int64(1)).Return(true, nil)
		m.links.EXPECT().Unlink(gomock.Any(), int64(1), int64(2)).Return(nil)
		assert.NoError(t, svc.UnlinkClothes(context.Background(), 1, 2))
	})

	t.Run("missing user", func(t *testing.T) {
		svc, m := newWardrobeService(t)
		m.links.EXPECT().UserExists(gomock.Any(), int64(1)).Return(false, nil)
		assert.ErrorIs(t, svc.UnlinkClothes(context.Background(), 1, 2), services.ErrUserNotFound)
	})

	t.Run("exists check failure", func(t *testing.T) {
		svc, m := newWardrobeService(t)
		m.links.EXPECT().UserExists(gomock.Any(), int64(1)).Return(false, errors.New("boom"))
		assert.EqualError(t, svc.UnlinkClothes(context.Background(), 1, 2), "boom")
	})
}
