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

type ThemeHandler struct {
	themeUseCase usecase.ThemeUseCase
}

func NewThemeHandler(themeUseCase usecase.ThemeUseCase) *ThemeHandler {
	return &ThemeHandler{themeUseCase: themeUseCase}
}

// @Summary List themes
// @Tags themes
// @Produce json
// @Success 200 {array} resdto.ThemeResponse
// @Router /themes [get]
func (h *ThemeHandler) FindAll(c *gin.Context) {
	themes, err := h.themeUseCase.FindAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromThemes(themes))
}

// @Summary Create theme
// @Tags themes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateThemeRequest true "Theme request"
// @Success 201 {object} resdto.ThemeResponse
// @Failure 400 {object} httperr.Response
// @Router /themes [post]
func (h *ThemeHandler) Create(c *gin.Context) {
	var req reqdto.CreateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.BindingMessage(err, req))
		return
	}

	var in usecase.CreateThemeInput
	if err := copier.Copy(&in, &req); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.InternalErrorMessage)
		return
	}

	th, err := h.themeUseCase.Create(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/themes/"+strconv.FormatInt(th.ID(), 10))
	c.JSON(http.StatusCreated, resdto.FromTheme(th))
}

// @Summary Delete theme
// @Description Fails while any reservation uses the theme
// @Tags themes
// @Param id path int true "Theme ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /themes/{id} [delete]
func (h *ThemeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.themeUseCase.DeleteByID(c.Request.Context(), id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
