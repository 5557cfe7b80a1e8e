package mock

import "github.com/fwojciec/scinews"

var _ scinews.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of scinews.Renderer.
type Renderer struct {
	RenderFn func(article *scinews.Article) (string, error)
}

func (r *Renderer) Render(article *scinews.Article) (string, error) {
	return r.RenderFn(article)
}
