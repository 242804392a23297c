package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"winsbygroup.com/lunchly/internal/apperr"
	"winsbygroup.com/lunchly/internal/backup"
	"winsbygroup.com/lunchly/internal/customer"
)

type Handler struct {
	svc     *Service
	backups *backup.Service
}

func NewHandler(svc *Service, backups *backup.Service) *Handler {
	return &Handler{svc: svc, backups: backups}
}

// Customers

func (h *Handler) GetCustomers(c echo.Context) error {
	out, err := h.svc.GetCustomers(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponses(out))
}

func (h *Handler) GetBestCustomers(c echo.Context) error {
	best, err := h.svc.GetBestCustomers(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}

	out := make([]BestCustomerResponse, len(best))
	for i, b := range best {
		out[i] = BestCustomerResponse{
			CustomerResponse: toCustomerResponse(b.Customer),
			ReservationCount: b.ReservationCount,
		}
	}
	return c.JSON(http.StatusOK, out)
}

// SearchCustomers answers an empty query with an empty list; the JSON API
// has no page to redirect to.
func (h *Handler) SearchCustomers(c echo.Context) error {
	out, err := h.svc.SearchCustomers(c.Request().Context(), c.QueryParam("q"))
	if errors.Is(err, customer.ErrEmptySearch) {
		return c.JSON(http.StatusOK, []CustomerResponse{})
	}
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponses(out))
}

func (h *Handler) GetCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return jsonError(c, err)
	}
	out, err := h.svc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponse(*out))
}

func (h *Handler) CreateCustomer(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	out, err := h.svc.CreateCustomer(c.Request().Context(), &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, toCustomerResponse(*out))
}

func (h *Handler) UpdateCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return jsonError(c, err)
	}

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.svc.UpdateCustomer(c.Request().Context(), id, &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponse(*out))
}

// Reservations

func (h *Handler) GetCustomerReservations(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return jsonError(c, err)
	}
	_, out, err := h.svc.GetCustomerReservations(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, toReservationResponses(out))
}

func (h *Handler) CreateReservation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return jsonError(c, err)
	}

	var req ReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.svc.CreateReservation(c.Request().Context(), id, &req)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, toReservationResponse(*out))
}

func (h *Handler) GetReservation(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return jsonError(c, err)
	}
	out, err := h.svc.GetReservation(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, toReservationResponse(*out))
}

// Backup

func (h *Handler) BackupDatabase(c echo.Context) error {
	result, err := h.backups.Create(c.Request().Context())
	if errors.Is(err, backup.ErrUnsupported) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// Helpers

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("invalid " + name)
	}
	return id, nil
}

// jsonError writes err with its carried status. Internal failures are
// logged and hidden from the caller.
func jsonError(c echo.Context, err error) error {
	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("admin api request failed")
		return c.JSON(status, ErrorResponse{Error: http.StatusText(status)})
	}

	resp := ErrorResponse{Error: err.Error()}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		resp.Fields = ae.Fields
	}
	return c.JSON(status, resp)
}
