package main

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"img2cpp/pkg/codegen"
	"img2cpp/pkg/convert"
	"img2cpp/pkg/loader"
)

type args struct {
	input string
	name  string
}

func (a args) base() string {
	return lo.Ternary(a.name != "", a.name, codegen.BaseName(a.input))
}

// run reports undecodable input and returns normally; anything else that
// fails is returned and ends the process.
func run(a args, c *convert.Converter, logger *zap.Logger) error {
	base := a.base()

	fmt.Printf("Input  name: %s\n", a.input)
	fmt.Printf("Output name: %s\n", base)

	r, err := c.Convert(a.input, base)
	if err != nil {
		var de *loader.DecodeError
		if errors.As(err, &de) {
			logger.With(zap.Error(de.Err)).Debug("decode failed")
			fmt.Printf("ERROR: Cannot read the '%s'.\n", de.Path)
			return nil
		}
		return err
	}

	logger.With(
		zap.String("format", r.Format),
		zap.Int("w", r.Width),
		zap.Int("h", r.Height),
		zap.String("size", r.Size()),
	).Info("written")

	fmt.Println("Success!!")
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lo.Ternary(debug, zapcore.DebugLevel, zapcore.WarnLevel))
	return cfg.Build()
}
