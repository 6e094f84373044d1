package preferences

import (
	"time"

	"github.com/google/uuid"

	"qrcode-api/internal/qrcode"
)

// Preferences are the per-user QR rendering defaults, related 1:1 to a user.
type Preferences struct {
	UserID               uuid.UUID
	DefaultSize          float64
	ErrorCorrectionLevel qrcode.ErrorCorrectionLevel
	OutputFormat         qrcode.OutputFormat
	Color                string
	BackgroundColor      string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewDefaults returns the starting preferences seeded for a fresh account:
// the minimum scannable size, medium error correction, SVG output, and the
// stock black-on-white scheme.
func NewDefaults(userID uuid.UUID) *Preferences {
	return &Preferences{
		UserID:               userID,
		DefaultSize:          qrcode.MinSize,
		ErrorCorrectionLevel: qrcode.LevelM,
		OutputFormat:         qrcode.FormatSVG,
		Color:                "black",
		BackgroundColor:      "white",
	}
}
