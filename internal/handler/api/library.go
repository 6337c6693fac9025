package api

import (
	"net/http"

	reqdto "library-service/internal/handler/dto/request"
	resdto "library-service/internal/handler/dto/response"
	"library-service/internal/handler/httperr"
	"library-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	libraries  usecase.LibraryService
	checkables usecase.CheckableService
}

func NewLibraryHandler(libraries usecase.LibraryService, checkables usecase.CheckableService) *LibraryHandler {
	return &LibraryHandler{libraries: libraries, checkables: checkables}
}

// @Summary List libraries
// @Tags libraries
// @Produce json
// @Success 200 {array} resdto.LibraryResponse
// @Failure 500 {object} httperr.Response
// @Router /api/libraries [get]
func (h *LibraryHandler) List(c *gin.Context) {
	libs, err := h.libraries.GetLibraries(c.Request.Context())
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLibraries(libs))
}

// @Summary Get library
// @Tags libraries
// @Produce json
// @Param name path string true "Library name"
// @Success 200 {object} resdto.LibraryResponse
// @Failure 404 {object} httperr.Response
// @Router /api/libraries/{name} [get]
func (h *LibraryHandler) Get(c *gin.Context) {
	lib, err := h.libraries.GetLibraryByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLibrary(lib))
}

// @Summary Create library
// @Description Checkables and checkouts reference catalogue entries by isbn
// @Tags libraries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLibraryRequest true "Library"
// @Success 201 {object} resdto.LibraryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/libraries [post]
func (h *LibraryHandler) Create(c *gin.Context) {
	var req reqdto.CreateLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, err.Error())
		return
	}

	lib, err := req.ToDomain(c.Request.Context(), h.checkables.GetByISBN)
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}

	if err := h.libraries.Save(c.Request.Context(), lib); err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLibrary(lib))
}

// @Summary Stock of one checkable
// @Description Amount 0 when the library does not stock the checkable
// @Tags libraries
// @Produce json
// @Param name path string true "Library name"
// @Param isbn path string true "ISBN"
// @Success 200 {object} resdto.CheckableAmountResponse
// @Failure 404 {object} httperr.Response
// @Router /api/libraries/{name}/checkables/{isbn} [get]
func (h *LibraryHandler) CheckableAmount(c *gin.Context) {
	amount, err := h.libraries.GetCheckableAmount(c.Request.Context(), c.Param("name"), c.Param("isbn"))
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckableAmount(amount))
}

// @Summary Overdue checkouts
// @Tags libraries
// @Produce json
// @Security BearerAuth
// @Param name path string true "Library name"
// @Success 200 {array} resdto.OverdueCheckoutResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/libraries/{name}/overdue-checkouts [get]
func (h *LibraryHandler) OverdueCheckouts(c *gin.Context) {
	items, err := h.libraries.GetOverdueCheckouts(c.Request.Context(), c.Param("name"))
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverdueCheckouts(items))
}
