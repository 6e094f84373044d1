package qrcode

// GenerateRequest carries the data and rendering parameters for one code.
type GenerateRequest struct {
	Data                 string               `json:"data"`
	Size                 float64              `json:"size"`
	Color                string               `json:"color"`
	BackgroundColor      string               `json:"backgroundColor"`
	ErrorCorrectionLevel ErrorCorrectionLevel `json:"errorCorrectionLevel"`
	OutputFormat         OutputFormat         `json:"outputFormat"`
}

// GenerateResponse points at the rendered artifact.
type GenerateResponse struct {
	QRCodeURL string `json:"qrCodeURL"`
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
}

// Service produces QR codes. No encoder is wired up yet; Generate answers
// with a fixed placeholder so clients can integrate against the final
// response shape before the renderer lands.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Generate accepts any input without validation and returns the canned
// placeholder result.
func (s *Service) Generate(req GenerateRequest) GenerateResponse {
	return GenerateResponse{
		QRCodeURL: "http://example.com/qr_code_url",
		Success:   true,
		Message:   "This is a mock response. The actual implementation would generate a real QR code.",
	}
}
