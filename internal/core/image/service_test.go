package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepare_DataURL(t *testing.T) {
	svc := NewService(1 << 20)
	ref := "data:image/png;base64," + base64.StdEncoding.EncodeToString(samplePNG(t))

	out, err := svc.Prepare(context.Background(), ref)
	require.NoError(t, err)

	data, ok := InlineJPEG(out)
	require.True(t, ok)
	_, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestPrepare_Download(t *testing.T) {
	body := samplePNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/omlet.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	svc := NewService(1 << 20)

	out, err := svc.Prepare(context.Background(), srv.URL+"/omlet.png")
	require.NoError(t, err)
	assert.Contains(t, out, jpegDataURL)

	_, err = svc.Prepare(context.Background(), srv.URL+"/missing.png")
	assert.ErrorContains(t, err, "status code 404")
}

func TestPrepare_Rejects(t *testing.T) {
	ctx := context.Background()

	_, err := NewService(1<<20).Prepare(ctx, "ftp://example.com/a.png")
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = NewService(1<<20).Prepare(ctx, "data:image/png;base64")
	assert.ErrorIs(t, err, ErrInvalidImage)

	ref := "data:image/png;base64," + base64.StdEncoding.EncodeToString(samplePNG(t))
	_, err = NewService(8).Prepare(ctx, ref)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = NewService(1<<20).Prepare(ctx, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("not an image")))
	assert.ErrorContains(t, err, "failed to decode image")
}

func TestInlineJPEG(t *testing.T) {
	_, ok := InlineJPEG("https://example.com/a.jpg")
	assert.False(t, ok)

	data, ok := InlineJPEG(jpegDataURL + base64.StdEncoding.EncodeToString([]byte{1, 2, 3}))
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, data)
}
