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

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary List reservations
// @Description List every reservation with its time and theme
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 500 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) FindAll(c *gin.Context) {
	reservations, err := h.reservationUseCase.FindAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservations(reservations))
}

// @Summary Create reservation
// @Description Book a theme at a time slot on a date
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err, req))
		return
	}

	in := usecase.CreateReservationInput{
		Name:    req.Name,
		Date:    req.Date,
		TimeID:  *req.TimeID,
		ThemeID: *req.ThemeID,
	}

	res, err := h.reservationUseCase.Create(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/reservations/"+strconv.FormatInt(res.ID(), 10))
	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary Delete reservation
// @Tags reservations
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.reservationUseCase.DeleteByID(c.Request.Context(), id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
