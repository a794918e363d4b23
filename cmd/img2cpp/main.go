package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"img2cpp/pkg/convert"
	"img2cpp/pkg/loader"
)

var outDir = flag.StringP("output-dir", "o", ".", "directory the .cpp file is written to")
var name = flag.StringP("name", "n", "", "override the derived base name")
var progress = flag.Bool("progress", false, "show progress bars on stderr")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Usage = usage
	flag.Parse()

	if err := loader.Check(); err != nil {
		fmt.Printf("ERROR: Require an image decoder: %s\n", err)
		os.Exit(1)
	}

	if flag.NArg() < 1 {
		flag.Usage()
		return
	}

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := fx.New(
		fx.Supply(
			logger,
			args{input: flag.Arg(0), name: *name},
		),
		fx.Provide(
			func() afero.Fs {
				return afero.NewOsFs()
			},
			func(l *zap.Logger) *loader.Downloader {
				return loader.NewDownloader(progressWriter(), l.With(zap.String("via", "downloader")))
			},
			func(fs afero.Fs, dl *loader.Downloader, l *zap.Logger) *loader.Loader {
				return loader.New(fs, dl, l.With(zap.String("via", "loader")))
			},
			func(fs afero.Fs, ld *loader.Loader, l *zap.Logger) *convert.Converter {
				return convert.New(fs, ld, l.With(zap.String("via", "converter")),
					convert.WithOutputDir(*outDir),
					convert.WithProgress(progressWriter()),
				)
			},
		),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.With(zap.String("via", "fx"))}
		}),
		fx.Invoke(run),
	)

	if err := app.Err(); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("Usage> %s <image_file>\n", filepath.Base(os.Args[0]))
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func progressWriter() io.Writer {
	if *progress {
		return os.Stderr
	}
	return nil
}
