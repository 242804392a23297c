package pages_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	vm "winsbygroup.com/lunchly/internal/viewmodels"
	"winsbygroup.com/lunchly/templates/pages"
)

func TestCustomersEscapesNames(t *testing.T) {
	var buf bytes.Buffer
	customers := []vm.Customer{{ID: 7, FullName: "<b>Bobby</b> Tables"}}

	if err := pages.Customers("Customers", customers).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "<b>Bobby</b>") {
		t.Error("customer name was not escaped")
	}
	if !strings.Contains(out, `href="/7"`) {
		t.Errorf("expected link to detail page in %s", out)
	}
}

func TestCustomerFormTitle(t *testing.T) {
	var buf bytes.Buffer
	form := vm.CustomerForm{
		Customer: vm.Customer{ID: 3, FirstName: "Jane", LastName: "Doe", FullName: "Jane Doe"},
		Errors:   map[string]string{"phone": "is required"},
	}

	if err := pages.CustomerForm(form).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Edit Jane Doe", `action="/3/edit"`, `value="Jane"`, "is required"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestCustomerDetailListsReservations(t *testing.T) {
	var buf bytes.Buffer
	c := vm.Customer{ID: 1, FullName: "Ann Lee"}
	res := []vm.Reservation{{ID: 1, StartAt: "April 2 2026, 7:00 pm", NumGuests: 4}}

	if err := pages.CustomerDetail(c, res, pages.ReservationForm{}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "April 2 2026, 7:00 pm") {
		t.Error("expected formatted start time")
	}
	if !strings.Contains(out, `action="/1/add-reservation"`) {
		t.Error("expected add-reservation form")
	}
}
