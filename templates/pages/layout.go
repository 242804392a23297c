// Package pages renders the staff-facing HTML views as templ components.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"winsbygroup.com/lunchly/internal/middleware"
)

// html writes markup, remembering the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s escaped.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

func csrfField(ctx context.Context, h *html) {
	h.raw(`<input type="hidden" name="_csrf" value="`)
	h.text(middleware.GetCSRF(ctx))
	h.raw(`">`)
}

// Layout wraps body in the page chrome: title, nav and the search box.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(` | Lunchly</title></head><body><nav>`)
		h.raw(`<a href="/">Customers</a> <a href="/best">Best Customers</a> <a href="/add">Add Customer</a>`)
		h.raw(`<form action="/search" method="get" role="search">`)
		h.raw(`<input type="search" name="search" placeholder="First or last name"> <button type="submit">Search</button>`)
		h.raw(`</form></nav><main><h1>`)
		h.text(title)
		h.raw(`</h1>`)
		h.render(ctx, body)
		h.raw(`</main><footer>Lunchly v`)
		h.text(middleware.GetVersion(ctx))
		h.raw(`</footer></body></html>`)
		return h.err
	})
}
