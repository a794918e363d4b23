package convert

import (
	"fmt"
	"path/filepath"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"img2cpp/pkg/bitmap"
	"img2cpp/pkg/codegen"
	"img2cpp/pkg/loader"
)

func New(fs afero.Fs, l *loader.Loader, logger *zap.Logger, opts ...Option) *Converter {
	c := &Converter{
		fs:     fs,
		loader: l,
		log:    logger,
		// options
		outDir: ".",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Converter struct {
	fs     afero.Fs
	loader *loader.Loader
	log    *zap.Logger
	// options
	outDir   string
	progress *progress
}

// Report describes a finished conversion.
type Report struct {
	Input  string
	Output string
	Format string
	Width  int
	Height int
	Bytes  int64
}

func (r *Report) Size() string {
	return bytesize.New(float64(r.Bytes)).String()
}

// Convert decodes input and writes <base>.cpp into the output directory.
// A *loader.DecodeError means nothing was written.
func (c *Converter) Convert(input, base string) (*Report, error) {
	src, err := c.loader.Load(input)
	if err != nil {
		return nil, err
	}

	b := src.Image.Bounds()
	arr := &codegen.Array{
		Name:   base,
		Width:  b.Dx(),
		Height: b.Dy(),
		Words:  bitmap.Encode(src.Image, c.rowProgress(b.Dy())...).Words(),
	}

	out := filepath.Join(c.outDir, codegen.Filename(base))
	n, err := c.write(out, arr)
	if err != nil {
		return nil, err
	}

	c.log.With(
		zap.String("input", input),
		zap.String("output", out),
		zap.Int("pixels", len(arr.Words)),
		zap.Int64("bytes", n),
	).Debug("converted")

	return &Report{
		Input:  input,
		Output: out,
		Format: src.Format,
		Width:  arr.Width,
		Height: arr.Height,
		Bytes:  n,
	}, nil
}

// write renders arr next to file and renames it into place, so a failure
// never leaves a truncated source behind.
func (c *Converter) write(file string, arr *codegen.Array) (int64, error) {
	tmp := fmt.Sprintf("%s.%s.tmp", file, xid.New().String())

	f, err := c.fs.Create(tmp)
	if err != nil {
		return 0, errors.Wrapf(err, "create %s failed", tmp)
	}

	n, err := arr.WriteTo(f)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		_ = c.fs.Remove(tmp)
		return 0, errors.Wrapf(err, "write %s failed", file)
	}

	if err := c.fs.Rename(tmp, file); err != nil {
		_ = c.fs.Remove(tmp)
		return 0, errors.Wrapf(err, "rename to %s failed", file)
	}

	return n, nil
}

func (c *Converter) rowProgress(rows int) []bitmap.RowFunc {
	if c.progress == nil {
		return nil
	}

	bar := progressbar.NewOptions(
		rows,
		progressbar.OptionSetWriter(c.progress.w),
		progressbar.OptionSetDescription(c.progress.desc),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(c.progress.w)
		}),
	)

	return []bitmap.RowFunc{func(int) { _ = bar.Add(1) }}
}
