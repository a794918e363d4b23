package loader

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newLoader(fs afero.Fs) *Loader {
	logger := zap.NewNop()
	return New(fs, NewDownloader(nil, logger), logger)
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check())
}

func TestLoadLocal(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "img/red.png", encodePNG(t, 3, 2, color.NRGBA{R: 255, A: 255}), 0644))

	src, err := newLoader(fs).Load("img/red.png")
	require.NoError(t, err)

	assert.Equal(t, "img/red.png", src.Path)
	assert.Equal(t, "png", src.Format)
	assert.Equal(t, 3, src.Image.Bounds().Dx())
	assert.Equal(t, 2, src.Image.Bounds().Dy())
}

func TestLoadFailures(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "notes.txt", []byte("not an image"), 0644))
	require.NoError(t, afero.WriteFile(fs, "broken.png", encodePNG(t, 4, 4, color.Black)[:40], 0644))

	for _, path := range []string{"notes.txt", "broken.png", "missing.png"} {
		t.Run(path, func(t *testing.T) {
			src, err := newLoader(fs).Load(path)
			assert.Nil(t, src)

			var de *DecodeError
			require.True(t, errors.As(err, &de), "got %v", err)
			assert.Equal(t, path, de.Path)
			assert.Contains(t, de.Error(), path)
		})
	}
}

func TestLoadRemote(t *testing.T) {
	body := encodePNG(t, 2, 2, color.White)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/logo.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	var progress bytes.Buffer
	logger := zap.NewNop()
	l := New(afero.NewMemMapFs(), NewDownloader(&progress, logger), logger)

	src, err := l.Load(srv.URL + "/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "png", src.Format)
	assert.Equal(t, image.Rect(0, 0, 2, 2), src.Image.Bounds())
	assert.NotZero(t, progress.Len())

	_, err = l.Load(srv.URL + "/missing.png")
	var de *DecodeError
	assert.True(t, errors.As(err, &de))
}
