package main

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"img2cpp/pkg/convert"
	"img2cpp/pkg/loader"
)

func newConverter(fs afero.Fs) *convert.Converter {
	logger := zap.NewNop()
	return convert.New(fs, loader.New(fs, loader.NewDownloader(nil, logger), logger), logger)
}

func TestArgsBase(t *testing.T) {
	assert.Equal(t, "photo", args{input: "a/b/photo.png"}.base())
	assert.Equal(t, "logo", args{input: "a/b/photo.png", name: "logo"}.base())
}

func TestRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))))
	require.NoError(t, afero.WriteFile(fs, "in/icon.png", buf.Bytes(), 0644))
	require.NoError(t, afero.WriteFile(fs, "in/junk.png", []byte("junk"), 0644))

	t.Run("success", func(t *testing.T) {
		require.NoError(t, run(args{input: "in/icon.png"}, newConverter(fs), zap.NewNop()))
		ok, err := afero.Exists(fs, "icon.cpp")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("undecodable input is not fatal", func(t *testing.T) {
		require.NoError(t, run(args{input: "in/junk.png"}, newConverter(fs), zap.NewNop()))
		ok, err := afero.Exists(fs, "junk.cpp")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("write failure is fatal", func(t *testing.T) {
		err := run(args{input: "in/icon.png", name: "other"}, newConverter(afero.NewReadOnlyFs(fs)), zap.NewNop())
		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	l, err = newLogger(false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
}
