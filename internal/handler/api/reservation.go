package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	reqdto "restaurant-reservations/internal/handler/dto/request"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const persistWarning = "change applied but not saved; it will be lost on restart"

var errReservationNotFound = errors.New("reservation not found")

type ReservationHandler struct {
	cmds  usecase.ReservationCommands
	q     usecase.ReservationQueries
	clock clock.Clock
}

func NewReservationHandler(cmds usecase.ReservationCommands, q usecase.ReservationQueries, clk clock.Clock) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Create reservation
// @Description Create a new reservation. A failed save is reported as a warning, not an error.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	details, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), details)
	warning, ok := h.handleMutationError(c, err)
	if !ok {
		return
	}

	resp, err := resdto.FromReservation(created)
	if err != nil {
		abortMappingError(c, err)
		return
	}
	resp.Warning = warning
	c.Header("Location", "/api/reservations/"+resp.ID)
	c.JSON(http.StatusCreated, resp)
}

// @Summary Search reservations
// @Description Filter by text (name, email, phone), status and date; sorted by date then time
// @Tags reservations
// @Produce json
// @Param search query string false "Text to look for"
// @Param status query string false "confirmed, pending, cancelled, completed or all"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) Search(c *gin.Context) {
	var query reqdto.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	criteria, err := query.ToCriteria()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}
	resp, err := resdto.FromReservations(h.q.Search(criteria))
	if err != nil {
		abortMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Today's reservations
// @Description Open reservations dated today, each flagged when the guest is late
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Router /api/reservations/today [get]
func (h *ReservationHandler) Today(c *gin.Context) {
	now := h.clock.Now()
	items := h.q.ListToday(now)
	resp, err := resdto.FromTodayReservations(items, func(r reservation.Reservation) bool {
		return h.q.IsLate(r, now)
	})
	if err != nil {
		abortMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reservation history
// @Description Reservations dated before today or completed, optionally narrowed by text
// @Tags reservations
// @Produce json
// @Param search query string false "Text to look for"
// @Success 200 {array} resdto.ReservationResponse
// @Router /api/reservations/history [get]
func (h *ReservationHandler) History(c *gin.Context) {
	items := h.q.SearchPast(h.clock.Now(), c.Query("search"))
	resp, err := resdto.FromReservations(items)
	if err != nil {
		abortMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reservations by date
// @Tags reservations
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/by-date/{date} [get]
func (h *ReservationHandler) ByDate(c *gin.Context) {
	date, err := reservation.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", err.Error())
		return
	}
	resp, err := resdto.FromReservations(h.q.ListByDate(date))
	if err != nil {
		abortMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Month calendar
// @Description Six Sunday-first weeks covering the month, with each day's reservations
// @Tags reservations
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {array} resdto.CalendarDayResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/calendar/{year}/{month} [get]
func (h *ReservationHandler) Calendar(c *gin.Context) {
	year, month, err := parseYearMonth(c.Param("year"), c.Param("month"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		return
	}
	resp, err := resdto.FromCalendar(h.q.Calendar(h.clock.Now(), year, month))
	if err != nil {
		abortMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	r, found := h.q.Get(id)
	if !found {
		httperr.AbortWithError(c, http.StatusNotFound, errReservationNotFound, "Not found", nil)
		return
	}
	resp, err := resdto.FromReservation(r)
	if err != nil {
		abortMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update reservation
// @Description Partial update. Unknown ids are ignored.
// @Tags reservations
// @Accept json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/{id} [patch]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	h.respondNoContent(c, h.cmds.Update(c.Request.Context(), id, p))
}

// @Summary Delete reservation
// @Description Permanently remove a reservation. Deleting an unknown id succeeds.
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respondNoContent(c, h.cmds.Delete(c.Request.Context(), id))
}

// @Summary Mark guest arrived
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/{id}/arrive [post]
func (h *ReservationHandler) MarkArrived(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respondNoContent(c, h.cmds.MarkArrived(c.Request.Context(), id))
}

// @Summary Complete reservation
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/{id}/complete [post]
func (h *ReservationHandler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respondNoContent(c, h.cmds.Complete(c.Request.Context(), id))
}

func (h *ReservationHandler) respondNoContent(c *gin.Context, err error) {
	if _, ok := h.handleMutationError(c, err); !ok {
		return
	}
	c.Status(http.StatusNoContent)
}

// handleMutationError turns a persistence failure into a warning, a refused
// write into a 503 and any other error into a 500. ok is false once the
// response has been aborted.
func (h *ReservationHandler) handleMutationError(c *gin.Context, err error) (warning string, ok bool) {
	switch {
	case err == nil:
		return "", true
	case errs.Is(err, errs.ErrPersistFailed):
		httperr.Warn(c, err, persistWarning)
		return persistWarning, true
	case errs.Is(err, errs.ErrSlotUnavailable):
		c.Header("Retry-After", "5")
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation storage unavailable", nil)
		return "", false
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return "", false
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parseYearMonth(yearParam, monthParam string) (int, time.Month, error) {
	year, err := strconv.Atoi(yearParam)
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, errs.Mark(errs.New("year "+yearParam+" out of range"), errs.ErrInvalidMonth)
	}
	month, err := strconv.Atoi(monthParam)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errs.Mark(errs.New("month "+monthParam+" out of range"), errs.ErrInvalidMonth)
	}
	return year, time.Month(month), nil
}

// abortMappingError reports a response that could not be built from a stored reservation.
func abortMappingError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "build response"), "Internal error", nil)
}
