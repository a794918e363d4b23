package loader

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	// imaging registers png, jpeg, gif, bmp and tiff
	_ "golang.org/x/image/webp"
)

// 1x1 opaque black PNG
const probePNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAAAAAA6fptVAAAACklEQVR4nGNgAAAAAgABSK+kcQAAAABJRU5ErkJggg=="

// Check verifies that images can be decoded at all. It is meant to run once
// at startup, before any input is accepted.
func Check() error {
	bs, err := base64.StdEncoding.DecodeString(probePNG)
	if err != nil {
		return errors.Wrap(err, "probe image corrupt")
	}

	img, err := imaging.Decode(bytes.NewReader(bs))
	if err != nil {
		return errors.Wrap(err, "no image decoder available")
	}
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		return errors.New("image decoder returned unexpected bounds")
	}

	return nil
}

// DecodeError reports an input that could not be opened or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot read %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Source is a successfully decoded input.
type Source struct {
	Path   string
	Format string
	Image  image.Image
}

func New(fs afero.Fs, dl *Downloader, logger *zap.Logger) *Loader {
	return &Loader{fs: fs, dl: dl, log: logger}
}

type Loader struct {
	fs  afero.Fs
	dl  *Downloader
	log *zap.Logger
}

// Load opens and decodes path. Any failure comes back as a *DecodeError.
func (l *Loader) Load(path string) (*Source, error) {
	log := l.log.With(zap.String("path", path))

	var bs []byte
	var err error
	if isRemote(path) {
		bs, err = l.dl.Get(path)
	} else {
		bs, err = afero.ReadFile(l.fs, path)
	}
	if err != nil {
		log.With(zap.Error(err)).Debug("read failed")
		return nil, &DecodeError{Path: path, Err: err}
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(bs))
	if err != nil {
		log.With(zap.Error(err)).Debug("unknown format")
		return nil, &DecodeError{Path: path, Err: err}
	}

	img, err := imaging.Decode(bytes.NewReader(bs))
	if err != nil {
		log.With(zap.String("format", format), zap.Error(err)).Debug("decode failed")
		return nil, &DecodeError{Path: path, Err: err}
	}

	log.With(
		zap.String("format", format),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	).Debug("decoded")

	return &Source{Path: path, Format: format, Image: img}, nil
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
