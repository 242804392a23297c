package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	vm "winsbygroup.com/lunchly/internal/viewmodels"
)

// Customers lists customers by name, each linking to its detail page.
func Customers(title string, customers []vm.Customer) templ.Component {
	return Layout(title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		if len(customers) == 0 {
			h.raw(`<p>No customers yet.</p>`)
			return h.err
		}
		h.raw(`<ul class="customers">`)
		for _, c := range customers {
			customerLink(h, c)
		}
		h.raw(`</ul>`)
		return h.err
	}))
}

// BestCustomers ranks customers by reservation count.
func BestCustomers(best []vm.BestCustomer) templ.Component {
	return Layout("Best Customers", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		if len(best) == 0 {
			h.raw(`<p>No reservations yet.</p>`)
			return h.err
		}
		h.raw(`<ol class="best">`)
		for _, b := range best {
			h.raw(`<li><a href="`)
			h.text(b.URL())
			h.raw(`">`)
			h.text(b.FullName)
			h.raw(`</a> <span class="count">`)
			h.text(strconv.FormatInt(b.ReservationCount, 10))
			h.raw(` reservations</span></li>`)
		}
		h.raw(`</ol>`)
		return h.err
	}))
}

func customerLink(h *html, c vm.Customer) {
	h.raw(`<li><a href="`)
	h.text(c.URL())
	h.raw(`">`)
	h.text(c.FullName)
	h.raw(`</a></li>`)
}
