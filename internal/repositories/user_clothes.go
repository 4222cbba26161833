package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wardrobe/internal/logger"
)

// UserClothesWriteRepository manages rows of the users_clothes association table.
// When txGetter finds a transaction in the context, every statement runs inside it.
type UserClothesWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserClothesWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserClothesWriteRepository {
	return &UserClothesWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserClothesWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// UserExists reports whether a user row with the given id exists.
// The row is share-locked until the surrounding transaction ends.
func (r *UserClothesWriteRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM "user" WHERE id = $1 FOR SHARE)`
	return r.exists(ctx, query, userID)
}

// ClothesExists reports whether a clothes row with the given id exists.
// The row is share-locked until the surrounding transaction ends.
func (r *UserClothesWriteRepository) ClothesExists(ctx context.Context, clothesID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM clothes WHERE id = $1 FOR SHARE)`
	return r.exists(ctx, query, clothesID)
}

func (r *UserClothesWriteRepository) exists(ctx context.Context, query string, id int64) (bool, error) {
	var found bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &found, query, id)

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", found,
		"error", err,
	)

	return found, err
}

// Link associates a user with a clothing item. Linking an existing pair is a no-op.
func (r *UserClothesWriteRepository) Link(ctx context.Context, userID, clothesID int64) error {
	const query = `
		INSERT INTO users_clothes (user_id, clothes_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, clothes_id) DO NOTHING
	`
	return r.exec(ctx, query, userID, clothesID)
}

// Unlink removes the association between a user and a clothing item, if any.
func (r *UserClothesWriteRepository) Unlink(ctx context.Context, userID, clothesID int64) error {
	const query = `DELETE FROM users_clothes WHERE user_id = $1 AND clothes_id = $2`
	return r.exec(ctx, query, userID, clothesID)
}

func (r *UserClothesWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
