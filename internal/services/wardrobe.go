package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-wardrobe/internal/logger"
	"github.com/sbilibin2017/gw-wardrobe/internal/models"
	"github.com/sbilibin2017/gw-wardrobe/internal/repositories"
)

//go:generate mockgen -source=wardrobe.go -destination=mock_wardrobe.go -package=services

// Error variables
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrClothesNotFound = errors.New("clothes not found")
)

// UserClothesReader loads a user together with its clothes.
type UserClothesReader interface {
	GetWithClothes(ctx context.Context, userID int64) (*models.UserClothesDB, error)
}

// ClothesStore creates and reads clothing items.
type ClothesStore interface {
	Create(ctx context.Context, item *models.ClothesDB) error
	GetByID(ctx context.Context, id int64) (*models.ClothesDB, error)
}

// UserClothesWriter manages user to clothes associations.
type UserClothesWriter interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	ClothesExists(ctx context.Context, clothesID int64) (bool, error)
	Link(ctx context.Context, userID, clothesID int64) error
	Unlink(ctx context.Context, userID, clothesID int64) error
}

// WardrobeService serves the clothes catalog and the user read projection.
type WardrobeService struct {
	reader  UserClothesReader
	clothes ClothesStore
	links   UserClothesWriter
}

// NewWardrobeService creates a new WardrobeService.
func NewWardrobeService(reader UserClothesReader, clothes ClothesStore, links UserClothesWriter) *WardrobeService {
	return &WardrobeService{
		reader:  reader,
		clothes: clothes,
		links:   links,
	}
}

// GetUserWithClothes returns the read projection of a user.
func (svc *WardrobeService) GetUserWithClothes(ctx context.Context, userID int64) (*models.UserClothesResponse, error) {
	user, err := svc.reader.GetWithClothes(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to load user with clothes", "userID", userID, "err", err)
		return nil, err
	}

	resp := models.NewUserClothesResponse(*user)
	return &resp, nil
}

// CreateClothes stores a clothing item from an already validated request,
// filling in the default color and size when they are omitted.
func (svc *WardrobeService) CreateClothes(ctx context.Context, req models.ClothesRequest) (*models.ClothesResponse, error) {
	color := models.DefaultColor
	if req.Color != "" {
		c, err := models.ParseColor(req.Color)
		if err != nil {
			return nil, err
		}
		color = c
	}
	size := models.DefaultSize
	if req.Size != "" {
		s, err := models.ParseSize(req.Size)
		if err != nil {
			return nil, err
		}
		size = s
	}

	item := &models.ClothesDB{
		Name:  req.Name,
		Color: color,
		Size:  size,
		Photo: req.Photo,
	}
	if err := svc.clothes.Create(ctx, item); err != nil {
		logger.Log.Errorw("failed to create clothes", "name", req.Name, "err", err)
		return nil, err
	}

	resp := models.NewClothesResponse(*item)
	return &resp, nil
}

// GetClothes returns a single clothing item.
func (svc *WardrobeService) GetClothes(ctx context.Context, id int64) (*models.ClothesResponse, error) {
	item, err := svc.clothes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClothesNotFound
		}
		logger.Log.Errorw("failed to get clothes", "clothesID", id, "err", err)
		return nil, err
	}

	resp := models.NewClothesResponse(*item)
	return &resp, nil
}

// LinkClothes associates an existing user with an existing clothing item.
func (svc *WardrobeService) LinkClothes(ctx context.Context, userID, clothesID int64) error {
	if err := svc.requireUser(ctx, userID); err != nil {
		return err
	}

	found, err := svc.links.ClothesExists(ctx, clothesID)
	if err != nil {
		logger.Log.Errorw("failed to check clothes exists", "clothesID", clothesID, "err", err)
		return err
	}
	if !found {
		return ErrClothesNotFound
	}

	if err := svc.links.Link(ctx, userID, clothesID); err != nil {
		logger.Log.Errorw("failed to link clothes", "userID", userID, "clothesID", clothesID, "err", err)
		return err
	}
	return nil
}

// UnlinkClothes removes an association. Removing a missing association is not an error.
func (svc *WardrobeService) UnlinkClothes(ctx context.Context, userID, clothesID int64) error {
	if err := svc.requireUser(ctx, userID); err != nil {
		return err
	}

	if err := svc.links.Unlink(ctx, userID, clothesID); err != nil {
		logger.Log.Errorw("failed to unlink clothes", "userID", userID, "clothesID", clothesID, "err", err)
		return err
	}
	return nil
}

func (svc *WardrobeService) requireUser(ctx context.Context, userID int64) error {
	found, err := svc.links.UserExists(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "userID", userID, "err", err)
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}
