package api

import (
	"net/http"
	"strconv"

	reqdto "roomescape/internal/handler/dto/request"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/handler/httperr"
	"roomescape/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationTimeHandler struct {
	timeUseCase usecase.ReservationTimeUseCase
}

func NewReservationTimeHandler(timeUseCase usecase.ReservationTimeUseCase) *ReservationTimeHandler {
	return &ReservationTimeHandler{
		timeUseCase: timeUseCase,
	}
}

// @Summary List reservation times
// @Tags times
// @Produce json
// @Success 200 {array} resdto.ReservationTimeResponse
// @Router /times [get]
func (h *ReservationTimeHandler) FindAll(c *gin.Context) {
	times, err := h.timeUseCase.FindAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationTimes(times))
}

// @Summary Create reservation time
// @Tags times
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationTimeRequest true "Start time as HH:MM"
// @Success 201 {object} resdto.ReservationTimeResponse
// @Failure 400 {object} httperr.Response
// @Router /times [post]
func (h *ReservationTimeHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err, req))
		return
	}

	rt, err := h.timeUseCase.Create(c.Request.Context(), req.StartAt)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/times/"+strconv.FormatInt(rt.ID(), 10))
	c.JSON(http.StatusCreated, resdto.FromReservationTime(rt))
}

// @Summary Delete reservation time
// @Description Fails while any reservation uses the time
// @Tags times
// @Param id path int true "Reservation time ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /times/{id} [delete]
func (h *ReservationTimeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.timeUseCase.DeleteByID(c.Request.Context(), id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List time availability
// @Description Every time slot with whether it is booked for the theme on the date
// @Tags times
// @Produce json
// @Param date query string true "Date as YYYY-MM-DD"
// @Param themeId query int true "Theme ID"
// @Success 200 {array} resdto.AvailableTimeResponse
// @Failure 400 {object} httperr.Response
// @Router /times/available [get]
func (h *ReservationTimeHandler) FindAvailable(c *gin.Context) {
	var q reqdto.AvailableTimesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err, q))
		return
	}

	items, err := h.timeUseCase.FindAvailableTimes(c.Request.Context(), q.Date, q.ThemeID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeAvailabilities(items))
}
