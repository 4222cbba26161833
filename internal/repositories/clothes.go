package repositories

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wardrobe/internal/logger"
	"github.com/sbilibin2017/gw-wardrobe/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewGormDB opens gorm on top of the pool already held by db, so both
// access paths share one set of connections.
func NewGormDB(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(
		postgres.New(postgres.Config{Conn: db.DB}),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
}

// ClothesRepository stores clothing items through gorm.
type ClothesRepository struct {
	db *gorm.DB
}

func NewClothesRepository(db *gorm.DB) *ClothesRepository {
	return &ClothesRepository{db: db}
}

// Create inserts item and fills in its id and creation time.
func (r *ClothesRepository) Create(ctx context.Context, item *models.ClothesDB) error {
	err := r.db.WithContext(ctx).Create(item).Error

	logger.Log.Infow(
		"model", "clothes",
		"op", "create",
		"result", item.ID,
		"error", err,
	)

	return err
}

// GetByID returns the clothing item with the given id or ErrNotFound.
func (r *ClothesRepository) GetByID(ctx context.Context, id int64) (*models.ClothesDB, error) {
	var item models.ClothesDB
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error

	logger.Log.Infow(
		"model", "clothes",
		"op", "get",
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// UserClothesReadRepository loads a user with its associated clothes.
type UserClothesReadRepository struct {
	db *gorm.DB
}

func NewUserClothesReadRepository(db *gorm.DB) *UserClothesReadRepository {
	return &UserClothesReadRepository{db: db}
}

// GetWithClothes returns the user and its clothes ordered by clothes id, or ErrNotFound.
func (r *UserClothesReadRepository) GetWithClothes(ctx context.Context, userID int64) (*models.UserClothesDB, error) {
	var user models.UserClothesDB
	err := r.db.WithContext(ctx).
		Preload("Clothes", func(db *gorm.DB) *gorm.DB {
			return db.Order("clothes.id")
		}).
		First(&user, "id = ?", userID).Error

	logger.Log.Infow(
		"model", "user",
		"op", "get_with_clothes",
		"args", []any{userID},
		"result", len(user.Clothes),
		"error", err,
	)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
