package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/go-resty/resty/v2"
	_ "golang.org/x/image/webp"
)

const (
	jpegQuality   = 85
	jpegDataURL   = "data:image/jpeg;base64,"
	downloadLimit = 30 * time.Second
)

var (
	ErrInvalidImage     = errors.New("invalid image reference")
	ErrImageTooLarge    = errors.New("image exceeds size limit")
	ErrUnsupportedImage = errors.New("unsupported image format")
)

// Service turns a recipe photo, given as an http(s) URL or a data URL, into
// an inline JPEG data URL that every model provider accepts.
type Service struct {
	maxSizeBytes int64
	client       *resty.Client
}

// NewService creates the service. Images larger than maxSizeBytes are
// rejected.
func NewService(maxSizeBytes int64) *Service {
	return &Service{
		maxSizeBytes: maxSizeBytes,
		client:       resty.New().SetTimeout(downloadLimit),
	}
}

// Prepare loads ref, checks size and format and re-encodes it as JPEG.
func (s *Service) Prepare(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)

	var raw []byte
	var err error
	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		raw, err = s.download(ctx, ref)
	case strings.HasPrefix(ref, "data:image/"):
		raw, err = decodeDataURL(ref)
	default:
		return "", ErrInvalidImage
	}
	if err != nil {
		return "", err
	}

	if int64(len(raw)) > s.maxSizeBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrImageTooLarge, s.maxSizeBytes)
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	if !isSupportedFormat(format) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, format)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("failed to encode image as JPEG: %w", err)
	}
	return jpegDataURL + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *Service) download(ctx context.Context, url string) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status code %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

func decodeDataURL(ref string) ([]byte, error) {
	_, payload, ok := strings.Cut(ref, ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing base64 payload", ErrInvalidImage)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 data: %w", err)
	}
	return data, nil
}

// InlineJPEG returns the bytes of a data URL produced by Prepare.
func InlineJPEG(ref string) ([]byte, bool) {
	payload, ok := strings.CutPrefix(ref, jpegDataURL)
	if !ok {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, false
	}
	return data, true
}

func isSupportedFormat(format string) bool {
	switch format {
	case "jpeg", "png", "gif", "webp":
		return true
	}
	return false
}
