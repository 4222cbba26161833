package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-wardrobe/internal/logger"
	"github.com/sbilibin2017/gw-wardrobe/internal/models"
)

// redacted replaces the password hash in logged arguments.
const redacted = "***"

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored row. Email uniqueness is left
// to the database: a conflicting insert returns ErrDuplicateEmail.
func (r *UserWriteRepository) Save(ctx context.Context, email, password, fullName string, phone *string) (*models.UserDB, error) {
	const query = `
		INSERT INTO "user" (email, password, full_name, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, password, full_name, phone, create_on, updated_on
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email, password, fullName, phone)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, redacted, fullName, phone},
		"result", user.ID,
		"error", err,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &user, nil
}
