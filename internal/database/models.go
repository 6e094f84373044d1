package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the persistence model for the users table.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           uuid.UUID `bun:"id,pk,type:uuid"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`
}

// UserPreferences is the persistence model for per-user QR rendering
// defaults, related 1:1 to users via user_id.
type UserPreferences struct {
	bun.BaseModel `bun:"table:user_preferences,alias:up"`

	UserID                      uuid.UUID `bun:"user_id,pk,type:uuid"`
	DefaultSize                 float64   `bun:"default_size,notnull"`
	DefaultErrorCorrectionLevel string    `bun:"default_error_correction_level,notnull"`
	DefaultOutputFormat         string    `bun:"default_output_format,notnull"`
	DefaultColor                string    `bun:"default_color,notnull"`
	DefaultBackgroundColor      string    `bun:"default_background_color,notnull"`
	CreatedAt                   time.Time `bun:"created_at,notnull"`
	UpdatedAt                   time.Time `bun:"updated_at,notnull"`
}
