// Package qrcode holds the QR rendering vocabulary shared across the API
// surface and the (for now stubbed) generation service.
package qrcode

// ErrorCorrectionLevel is the QR symbol redundancy tier, trading data
// capacity for resilience to damage.
type ErrorCorrectionLevel string

const (
	LevelL ErrorCorrectionLevel = "L"
	LevelM ErrorCorrectionLevel = "M"
	LevelQ ErrorCorrectionLevel = "Q"
	LevelH ErrorCorrectionLevel = "H"
)

func (l ErrorCorrectionLevel) Valid() bool {
	switch l {
	case LevelL, LevelM, LevelQ, LevelH:
		return true
	}
	return false
}

// OutputFormat is the rendering target for a generated code.
type OutputFormat string

const (
	FormatSVG OutputFormat = "SVG"
	FormatPNG OutputFormat = "PNG"
)

func (f OutputFormat) Valid() bool {
	switch f {
	case FormatSVG, FormatPNG:
		return true
	}
	return false
}

// MinSize is the smallest edge length in centimeters that stays reliably
// scannable. Callers are expected to keep sizes at or above it; the
// service does not enforce it.
const MinSize = 2.0
