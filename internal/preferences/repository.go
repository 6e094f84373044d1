package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"qrcode-api/internal/database"
	"qrcode-api/internal/qrcode"
)

var ErrNotFound = errors.New("user preferences not found")

// Repository handles preferences persistence
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the preferences row for a user. Called once when the
// account is created; every later change goes through Update.
func (r *Repository) Create(ctx context.Context, p *Preferences) error {
	now := time.Now()
	dbPrefs := &database.UserPreferences{
		UserID:                      p.UserID,
		DefaultSize:                 p.DefaultSize,
		DefaultErrorCorrectionLevel: string(p.ErrorCorrectionLevel),
		DefaultOutputFormat:         string(p.OutputFormat),
		DefaultColor:                p.Color,
		DefaultBackgroundColor:      p.BackgroundColor,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}

	_, err := r.db.NewInsert().
		Model(dbPrefs).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create preferences: %w", err)
	}

	return nil
}

// Update rewrites all six preference fields for the given user. Strictly
// an update: a missing row is ErrNotFound, never an insert.
func (r *Repository) Update(ctx context.Context, p *Preferences) error {
	result, err := r.db.NewUpdate().
		Model((*database.UserPreferences)(nil)).
		Set("default_size = ?", p.DefaultSize).
		Set("default_error_correction_level = ?", string(p.ErrorCorrectionLevel)).
		Set("default_output_format = ?", string(p.OutputFormat)).
		Set("default_color = ?", p.Color).
		Set("default_background_color = ?", p.BackgroundColor).
		Set("updated_at = CURRENT_TIMESTAMP").
		Where("user_id = ?", p.UserID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByUserID retrieves the preferences row for a user
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Preferences, error) {
	dbPrefs := new(database.UserPreferences)
	err := r.db.NewSelect().
		Model(dbPrefs).
		Where("user_id = ?", userID).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	return mapDBPreferencesToModel(dbPrefs), nil
}

// mapDBPreferencesToModel converts database model to domain model
func mapDBPreferencesToModel(dbp *database.UserPreferences) *Preferences {
	return &Preferences{
		UserID:               dbp.UserID,
		DefaultSize:          dbp.DefaultSize,
		ErrorCorrectionLevel: qrcode.ErrorCorrectionLevel(dbp.DefaultErrorCorrectionLevel),
		OutputFormat:         qrcode.OutputFormat(dbp.DefaultOutputFormat),
		Color:                dbp.DefaultColor,
		BackgroundColor:      dbp.DefaultBackgroundColor,
		CreatedAt:            dbp.CreatedAt,
		UpdatedAt:            dbp.UpdatedAt,
	}
}
