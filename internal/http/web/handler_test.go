package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"

	"winsbygroup.com/lunchly/internal/customer"
	"winsbygroup.com/lunchly/internal/http/admin"
	"winsbygroup.com/lunchly/internal/http/web"
	"winsbygroup.com/lunchly/internal/reservation"
	"winsbygroup.com/lunchly/internal/testutil"
)

type fixture struct {
	e         *echo.Echo
	customers *customer.Service
	resSvc    *reservation.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	resSvc := reservation.NewService(db)
	custSvc := customer.NewService(db, resSvc)

	e := echo.New()
	web.RegisterRoutes(e.Group(""), web.NewHandler(admin.NewService(custSvc, resSvc)))
	return &fixture{e: e, customers: custSvc, resSvc: resSvc}
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (f *fixture) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) save(t *testing.T, first, last string) *customer.Customer {
	t.Helper()
	c := &customer.Customer{FirstName: first, LastName: last}
	if err := f.customers.Save(context.Background(), c); err != nil {
		t.Fatalf("save: %v", err)
	}
	return c
}

func path(id int64, suffix string) string {
	return "/" + strconv.FormatInt(id, 10) + suffix
}

func TestListCustomers(t *testing.T) {
	f := newFixture(t)
	f.save(t, "Jane", "Doe")
	f.save(t, "Al", "Adams")

	rec := f.get("/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Index(body, "Al Adams") > strings.Index(body, "Jane Doe") {
		t.Error("expected customers ordered by last name")
	}
}

func TestSearchCustomers(t *testing.T) {
	f := newFixture(t)
	f.save(t, "Jane", "Doe")

	t.Run("empty search redirects home", func(t *testing.T) {
		for _, q := range []string{"/search", "/search?search=", "/search?search=+"} {
			rec := f.get(q)
			if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/" {
				t.Errorf("%s: expected 302 to /, got %d %q", q, rec.Code, rec.Header().Get(echo.HeaderLocation))
			}
		}
	})

	t.Run("match lists customer", func(t *testing.T) {
		rec := f.get("/search?search=Jane+Smith")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Jane Doe") {
			t.Error("expected Jane Doe in results")
		}
	})

	t.Run("no match is 404", func(t *testing.T) {
		rec := f.get("/search?search=Zed")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "No Customer Found, Try A Different Search") {
			t.Errorf("expected not found message, got %s", rec.Body.String())
		}
	})
}

func TestShowCustomer(t *testing.T) {
	f := newFixture(t)
	c := f.save(t, "Ann", "Lee")
	r := &reservation.Reservation{CustomerID: c.ID, StartAt: time.Date(2026, time.April, 2, 19, 0, 0, 0, time.UTC), NumGuests: 4}
	if err := f.resSvc.Save(context.Background(), r); err != nil {
		t.Fatalf("save reservation: %v", err)
	}

	rec := f.get(path(c.ID, ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "April 2 2026, 7:00 pm") {
		t.Error("expected reservation on detail page")
	}

	for _, p := range []string{"/999", "/abc", "/999/edit"} {
		if rec := f.get(p); rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", p, rec.Code)
		}
	}
}

func TestAddAndEditCustomer(t *testing.T) {
	f := newFixture(t)

	rec := f.post("/add", url.Values{"first_name": {"Jane"}, "last_name": {"Doe"}, "phone": {"555-0100"}})
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d: %s", rec.Code, rec.Body.String())
	}
	loc := rec.Header().Get(echo.HeaderLocation)
	id, err := strconv.ParseInt(strings.TrimPrefix(loc, "/"), 10, 64)
	if err != nil {
		t.Fatalf("unexpected location %q", loc)
	}

	rec = f.post(path(id, "/edit"), url.Values{"first_name": {"Jane"}, "last_name": {"Smith"}, "notes": {"moved"}})
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect after edit, got %d", rec.Code)
	}

	got, err := f.customers.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LastName != "Smith" || got.Notes != "moved" || got.Phone != "" {
		t.Errorf("unexpected customer after edit: %+v", got)
	}

	t.Run("missing name re-renders form", func(t *testing.T) {
		rec := f.post("/add", url.Values{"first_name": {"Cher"}})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "is required") || !strings.Contains(body, `value="Cher"`) {
			t.Errorf("expected form with error and kept input, got %s", body)
		}
	})
}

func TestAddReservation(t *testing.T) {
	f := newFixture(t)
	c := f.save(t, "Carlos", "Doe")

	rec := f.post(path(c.ID, "/add-reservation"), url.Values{
		"start_at":   {"2026-11-07T20:00"},
		"num_guests": {"2"},
		"notes":      {"window"},
	})
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != path(c.ID, "") {
		t.Fatalf("expected redirect to customer, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}

	res, err := f.resSvc.GetForCustomer(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("reservations: %v", err)
	}
	if len(res) != 1 || res[0].NumGuests != 2 || res[0].Notes != "window" {
		t.Errorf("unexpected reservations %+v", res)
	}

	bad := []url.Values{
		{"start_at": {"someday"}, "num_guests": {"2"}},
		{"start_at": {"2026-11-07T20:00"}, "num_guests": {"lots"}},
		{"start_at": {"2026-11-07T20:00"}, "num_guests": {"0"}},
	}
	for _, form := range bad {
		if rec := f.post(path(c.ID, "/add-reservation"), form); rec.Code != http.StatusBadRequest {
			t.Errorf("%v: expected 400, got %d", form, rec.Code)
		}
	}

	if rec := f.post("/999/add-reservation", url.Values{"start_at": {"2026-11-07T20:00"}, "num_guests": {"2"}}); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown customer, got %d", rec.Code)
	}
}

func TestBestCustomers(t *testing.T) {
	f := newFixture(t)
	c := f.save(t, "Carlos", "Doe")
	f.save(t, "Never", "Booked")
	r := &reservation.Reservation{CustomerID: c.ID, StartAt: time.Now(), NumGuests: 2}
	if err := f.resSvc.Save(context.Background(), r); err != nil {
		t.Fatalf("save reservation: %v", err)
	}

	rec := f.get("/best")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Carlos Doe") || strings.Contains(body, "Never Booked") {
		t.Errorf("unexpected ranking page %s", body)
	}
}
