package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	vm "winsbygroup.com/lunchly/internal/viewmodels"
)

// ReservationForm holds the add-reservation form state on the detail page.
type ReservationForm struct {
	StartAt   string
	NumGuests string
	Notes     string
	Errors    map[string]string
}

// CustomerDetail shows a customer, their reservations and a form to book
// another.
func CustomerDetail(c vm.Customer, reservations []vm.Reservation, form ReservationForm) templ.Component {
	return Layout(c.FullName, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<dl><dt>Phone</dt><dd>`)
		h.text(c.Phone)
		h.raw(`</dd><dt>Notes</dt><dd>`)
		h.text(c.Notes)
		h.raw(`</dd></dl><p><a href="`)
		h.text(c.URL())
		h.raw(`/edit">Edit</a></p><h2>Reservations</h2>`)

		if len(reservations) == 0 {
			h.raw(`<p>No reservations.</p>`)
		} else {
			h.raw(`<ul class="reservations">`)
			for _, r := range reservations {
				h.raw(`<li><b>`)
				h.text(r.StartAt)
				h.raw(`</b> for `)
				h.text(strconv.Itoa(r.NumGuests))
				h.raw(`<p>`)
				h.text(r.Notes)
				h.raw(`</p></li>`)
			}
			h.raw(`</ul>`)
		}

		h.raw(`<h2>New Reservation</h2><form method="post" action="`)
		h.text(c.URL())
		h.raw(`/add-reservation">`)
		csrfField(ctx, h)
		field(h, "Start", "start_at", "datetime-local", form.StartAt, form.Errors)
		field(h, "Number of Guests", "num_guests", "number", form.NumGuests, form.Errors)
		textarea(h, "Notes", "notes", form.Notes, form.Errors)
		h.raw(`<button type="submit">Add</button></form>`)
		return h.err
	}))
}

// CustomerForm adds a new customer or edits an existing one.
func CustomerForm(form vm.CustomerForm) templ.Component {
	title, action := "Add a Customer", "/add"
	if !form.IsNew() {
		title, action = "Edit "+form.Customer.FullName, form.Customer.URL()+"/edit"
	}

	return Layout(title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		if msg, ok := form.Errors[""]; ok {
			h.raw(`<p class="error">`)
			h.text(msg)
			h.raw(`</p>`)
		}
		h.raw(`<form method="post" action="`)
		h.text(action)
		h.raw(`">`)
		csrfField(ctx, h)
		field(h, "First Name", "first_name", "text", form.Customer.FirstName, form.Errors)
		field(h, "Last Name", "last_name", "text", form.Customer.LastName, form.Errors)
		field(h, "Phone", "phone", "tel", form.Customer.Phone, form.Errors)
		textarea(h, "Notes", "notes", form.Customer.Notes, form.Errors)
		h.raw(`<button type="submit">Save</button></form>`)
		return h.err
	}))
}

func field(h *html, label, name, typ, value string, errs map[string]string) {
	h.raw(`<label>`)
	h.text(label)
	h.raw(` <input type="` + typ + `" name="` + name + `" value="`)
	h.text(value)
	h.raw(`"></label>`)
	fieldError(h, name, errs)
}

func textarea(h *html, label, name, value string, errs map[string]string) {
	h.raw(`<label>`)
	h.text(label)
	h.raw(` <textarea name="` + name + `">`)
	h.text(value)
	h.raw(`</textarea></label>`)
	fieldError(h, name, errs)
}

func fieldError(h *html, name string, errs map[string]string) {
	if msg, ok := errs[name]; ok {
		h.raw(`<span class="error">`)
		h.text(msg)
		h.raw(`</span>`)
	}
}
