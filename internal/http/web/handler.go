package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"winsbygroup.com/lunchly/internal/apperr"
	"winsbygroup.com/lunchly/internal/customer"
	"winsbygroup.com/lunchly/internal/http/admin"
	vm "winsbygroup.com/lunchly/internal/viewmodels"
	"winsbygroup.com/lunchly/templates/pages"
)

// Layouts accepted for the reservation start field. The first is what
// <input type="datetime-local"> submits.
var startAtLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02 3:04 pm",
}

// Handler handles web UI requests
type Handler struct {
	svc *admin.Service
}

// NewHandler creates a new web handler
func NewHandler(svc *admin.Service) *Handler {
	return &Handler{svc: svc}
}

// --------------------------
// Customers
// --------------------------

// ListCustomers shows every customer.
func (h *Handler) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	customers, err := h.svc.GetCustomers(ctx)
	if err != nil {
		return httpError(err)
	}
	return render(c, http.StatusOK, pages.Customers("Customers", FromDomainCustomers(customers)))
}

// SearchCustomers shows customers matching ?search=. A blank search goes
// back to the full list.
func (h *Handler) SearchCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	text := c.QueryParam("search")

	customers, err := h.svc.SearchCustomers(ctx, text)
	if errors.Is(err, customer.ErrEmptySearch) {
		return c.Redirect(http.StatusFound, "/")
	}
	if err != nil {
		return httpError(err)
	}
	return render(c, http.StatusOK, pages.Customers("Search results for "+strconv.Quote(text), FromDomainCustomers(customers)))
}

func (h *Handler) BestCustomers(c echo.Context) error {
	best, err := h.svc.GetBestCustomers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return render(c, http.StatusOK, pages.BestCustomers(FromDomainBestCustomers(best)))
}

func (h *Handler) NewCustomerForm(c echo.Context) error {
	return render(c, http.StatusOK, pages.CustomerForm(vm.CustomerForm{}))
}

func (h *Handler) CreateCustomer(c echo.Context) error {
	req := customerRequest(c)

	cust, err := h.svc.CreateCustomer(c.Request().Context(), req)
	if err != nil {
		form := vm.CustomerForm{Customer: formCustomer(0, req)}
		return h.renderCustomerFormWithError(c, form, err)
	}
	return c.Redirect(http.StatusFound, FromDomainCustomer(*cust).URL())
}

// ShowCustomer shows a customer with their reservations.
func (h *Handler) ShowCustomer(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}
	return h.renderDetail(c, http.StatusOK, id, pages.ReservationForm{})
}

func (h *Handler) EditCustomerForm(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	cust, err := h.svc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return render(c, http.StatusOK, pages.CustomerForm(vm.CustomerForm{Customer: FromDomainCustomer(*cust)}))
}

func (h *Handler) UpdateCustomer(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	req := customerRequest(c)
	cust, err := h.svc.UpdateCustomer(c.Request().Context(), id, req)
	if err != nil {
		form := vm.CustomerForm{Customer: formCustomer(id, req)}
		return h.renderCustomerFormWithError(c, form, err)
	}
	return c.Redirect(http.StatusFound, FromDomainCustomer(*cust).URL())
}

// renderCustomerFormWithError re-renders the customer form with field errors.
// Anything other than a validation failure becomes an HTTP error.
func (h *Handler) renderCustomerFormWithError(c echo.Context, form vm.CustomerForm, err error) error {
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Status != http.StatusBadRequest {
		return httpError(err)
	}

	form.Errors = fieldErrors(ae)
	return render(c, http.StatusBadRequest, pages.CustomerForm(form))
}

// --------------------------
// Reservations
// --------------------------

// AddReservation books a reservation for the customer and returns to their
// page. Invalid input re-renders the page with the form errors.
func (h *Handler) AddReservation(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}

	form := pages.ReservationForm{
		StartAt:   strings.TrimSpace(c.FormValue("start_at")),
		NumGuests: strings.TrimSpace(c.FormValue("num_guests")),
		Notes:     strings.TrimSpace(c.FormValue("notes")),
		Errors:    map[string]string{},
	}

	req := &admin.ReservationRequest{Notes: form.Notes}
	if req.StartAt, err = parseStartAt(form.StartAt); err != nil {
		form.Errors["start_at"] = "is not a valid date and time"
	}
	if req.NumGuests, err = strconv.Atoi(form.NumGuests); err != nil {
		form.Errors["num_guests"] = "must be a number"
	}
	if len(form.Errors) > 0 {
		return h.renderDetail(c, http.StatusBadRequest, id, form)
	}

	if _, err := h.svc.CreateReservation(c.Request().Context(), id, req); err != nil {
		var ae *apperr.Error
		if !errors.As(err, &ae) || ae.Status != http.StatusBadRequest {
			return httpError(err)
		}
		form.Errors = fieldErrors(ae)
		return h.renderDetail(c, http.StatusBadRequest, id, form)
	}

	return c.Redirect(http.StatusFound, "/"+strconv.FormatInt(id, 10))
}

func (h *Handler) renderDetail(c echo.Context, status int, id int64, form pages.ReservationForm) error {
	ctx := c.Request().Context()
	cust, res, err := h.svc.GetCustomerReservations(ctx, id)
	if err != nil {
		return httpError(err)
	}
	page := pages.CustomerDetail(FromDomainCustomer(*cust), FromDomainReservations(res), form)
	return render(c, status, page)
}

// --------------------------
// Helpers
// --------------------------

func customerRequest(c echo.Context) *admin.CustomerRequest {
	return &admin.CustomerRequest{
		FirstName: strings.TrimSpace(c.FormValue("first_name")),
		LastName:  strings.TrimSpace(c.FormValue("last_name")),
		Phone:     strings.TrimSpace(c.FormValue("phone")),
		Notes:     strings.TrimSpace(c.FormValue("notes")),
	}
}

func formCustomer(id int64, req *admin.CustomerRequest) vm.Customer {
	return vm.Customer{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		FullName:  req.FirstName + " " + req.LastName,
		Phone:     req.Phone,
		Notes:     req.Notes,
	}
}

// customerID parses :id. Anything but a positive integer is no customer at all.
func customerID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "No such customer: "+c.Param("id"))
	}
	return id, nil
}

func parseStartAt(s string) (time.Time, error) {
	var err error
	for _, layout := range startAtLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func fieldErrors(ae *apperr.Error) map[string]string {
	errs := make(map[string]string, len(ae.Fields))
	for _, f := range ae.Fields {
		errs[f.Field] = f.Error
	}
	if len(errs) == 0 {
		errs[""] = ae.Error()
	}
	return errs
}

// httpError maps a domain error onto an echo HTTP error. Internal failures
// are logged and reported without detail.
func httpError(err error) error {
	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("web request failed")
		return echo.NewHTTPError(status, http.StatusText(status)).SetInternal(err)
	}
	return echo.NewHTTPError(status, err.Error()).SetInternal(err)
}

func render(c echo.Context, status int, page templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return page.Render(c.Request().Context(), c.Response())
}
