package convert

import "io"

type Option func(c *Converter)

func WithOutputDir(dir string) Option {
	return func(c *Converter) {
		if dir != "" {
			c.outDir = dir
		}
	}
}

// WithProgress draws a per-row progress bar on w while pixels are encoded.
func WithProgress(w io.Writer) Option {
	return func(c *Converter) {
		if w != nil {
			c.progress = &progress{w: w, desc: "Encoding"}
		}
	}
}

type progress struct {
	w    io.Writer
	desc string
}
