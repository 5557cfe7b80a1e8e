package mock

import "github.com/fwojciec/scinews"

var _ scinews.Converter = (*Converter)(nil)

// Converter is a mock implementation of scinews.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
