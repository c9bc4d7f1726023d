package ingredients

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolpotato/backend/internal/apperrors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"trims and keeps case", "tomato, Onion ,  unknown", []string{"tomato", "Onion", "unknown"}},
		{"empty", "", []string{}},
		{"only separators", " , ,", []string{}},
		{"keeps duplicates in order", "egg,milk,egg", []string{"egg", "milk", "egg"}},
		{"single", "rice", []string{"rice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "tomato,Onion,unknown", Join([]string{"tomato", "Onion", "unknown"}))
	assert.Equal(t, "", Join(nil))
}

func encodeJPEG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeSize(t *testing.T, b64 string) (int, int) {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestPrepareImage(t *testing.T) {
	t.Run("rejects invalid base64", func(t *testing.T) {
		_, err := PrepareImage("not base64!!", 100)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		_, err := PrepareImage("", 100)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("passes through non-image bytes", func(t *testing.T) {
		in := base64.StdEncoding.EncodeToString([]byte("hello"))
		out, err := PrepareImage(in, 100)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("leaves small images untouched", func(t *testing.T) {
		in := encodeJPEG(t, 40, 20)
		out, err := PrepareImage(in, 100)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("downscales wide images", func(t *testing.T) {
		out, err := PrepareImage(encodeJPEG(t, 200, 100), 50)
		require.NoError(t, err)
		w, h := decodeSize(t, out)
		assert.Equal(t, 50, w)
		assert.Equal(t, 25, h)
	})

	t.Run("downscales tall images", func(t *testing.T) {
		out, err := PrepareImage(encodeJPEG(t, 60, 120), 30)
		require.NoError(t, err)
		w, h := decodeSize(t, out)
		assert.Equal(t, 15, w)
		assert.Equal(t, 30, h)
	})

	t.Run("re-encodes small png as jpeg", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 8, 6))
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, img))

		out, err := PrepareImage(base64.StdEncoding.EncodeToString(buf.Bytes()), 100)
		require.NoError(t, err)
		raw, err := base64.StdEncoding.DecodeString(out)
		require.NoError(t, err)
		cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 8, cfg.Width)
		assert.Equal(t, 6, cfg.Height)
	})

	t.Run("strips data url prefix", func(t *testing.T) {
		in := encodeJPEG(t, 10, 10)
		out, err := PrepareImage("data:image/jpeg;base64,"+in, 0)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}
