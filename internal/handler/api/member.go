package api

import (
	"net/http"
	"strconv"

	reqdto "roomescape/internal/handler/dto/request"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/handler/httperr"
	"roomescape/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type MemberHandler struct {
	memberUseCase usecase.MemberUseCase
}

func NewMemberHandler(memberUseCase usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{memberUseCase: memberUseCase}
}

// @Summary List members
// @Tags members
// @Produce json
// @Success 200 {array} resdto.MemberResponse
// @Router /members [get]
func (h *MemberHandler) FindAll(c *gin.Context) {
	members, err := h.memberUseCase.FindAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMembers(members))
}

// @Summary Sign up
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Sign-up request"
// @Success 201 {object} resdto.MemberResponse
// @Failure 400 {object} httperr.Response
// @Router /members [post]
func (h *MemberHandler) SignUp(c *gin.Context) {
	var req reqdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err, req))
		return
	}

	var in usecase.SignUpInput
	if err := copier.Copy(&in, &req); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.InternalErrorMessage)
		return
	}

	m, err := h.memberUseCase.SignUp(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/members/"+strconv.FormatInt(m.ID(), 10))
	c.JSON(http.StatusCreated, resdto.FromMember(m))
}
