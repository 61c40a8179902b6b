package qrcode

import (
	"encoding/json"
	"strings"

	"lostfound/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize  = 256
	minSize      = 64
	maxSize      = 1024
	postCodeType = "post"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// PostCodeData is encoded when no public base URL is configured, so a scanning app can still resolve the post.
type PostCodeData struct {
	PostID string `json:"post_id"`
	Link   string `json:"link"`
	Type   string `json:"type"`
}

// NewQRCodeService creates a QR code service. baseURL is prefixed to relative post links.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 min(max(size, minSize), maxSize),
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePostQR renders a PNG that opens the post. With a base URL the code holds the absolute
// link, which phone cameras open directly; otherwise it holds a PostCodeData JSON document.
func (s *qrcodeService) GeneratePostQR(postID, link string) ([]byte, error) {
	if postID == "" {
		return nil, errors.New("post id is required")
	}

	content, err := s.content(postID, link)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) content(postID, link string) (string, error) {
	if s.baseURL != "" && strings.HasPrefix(link, "/") {
		return s.baseURL + link, nil
	}
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link, nil
	}

	jsonData, err := json.Marshal(PostCodeData{PostID: postID, Link: link, Type: postCodeType})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}
