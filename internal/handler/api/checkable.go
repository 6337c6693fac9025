package api

import (
	"net/http"

	"library-service/internal/domain/checkable"
	reqdto "library-service/internal/handler/dto/request"
	resdto "library-service/internal/handler/dto/response"
	"library-service/internal/handler/httperr"
	"library-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckableHandler struct {
	checkables usecase.CheckableService
	libraries  usecase.LibraryService
}

func NewCheckableHandler(checkables usecase.CheckableService, libraries usecase.LibraryService) *CheckableHandler {
	return &CheckableHandler{checkables: checkables, libraries: libraries}
}

// @Summary List checkables
// @Description All checkables in catalogue order
// @Tags checkables
// @Produce json
// @Success 200 {array} resdto.CheckableResponse
// @Failure 500 {object} httperr.Response
// @Router /api/checkables [get]
func (h *CheckableHandler) List(c *gin.Context) {
	items, err := h.checkables.GetAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckables(items))
}

// @Summary Get checkable
// @Tags checkables
// @Produce json
// @Param isbn path string true "ISBN"
// @Success 200 {object} resdto.CheckableResponse
// @Failure 404 {object} httperr.Response
// @Router /api/checkables/{isbn} [get]
func (h *CheckableHandler) Get(c *gin.Context) {
	item, err := h.checkables.GetByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckable(item))
}

// @Summary First checkable of a kind
// @Description Returns only the first match in catalogue order
// @Tags checkables
// @Produce json
// @Param kind path string true "media, science_kit or ticket"
// @Success 200 {object} resdto.CheckableResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/kinds/{kind}/checkable [get]
func (h *CheckableHandler) GetByKind(c *gin.Context) {
	kind, err := checkable.ParseKind(c.Param("kind"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid kind", nil)
		return
	}
	item, err := h.checkables.GetByKind(c.Request.Context(), kind)
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckable(item))
}

// @Summary Create checkable
// @Tags checkables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCheckableRequest true "Checkable"
// @Success 201 {object} resdto.CheckableResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/checkables [post]
func (h *CheckableHandler) Create(c *gin.Context) {
	var req reqdto.CreateCheckableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, err.Error())
		return
	}

	item, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}

	if err := h.checkables.Save(c.Request.Context(), item); err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckable(item))
}

// @Summary Libraries that can lend a checkable
// @Description Libraries holding at least one copy, in library order
// @Tags checkables
// @Produce json
// @Param isbn path string true "ISBN"
// @Success 200 {array} resdto.LibraryAvailabilityResponse
// @Failure 404 {object} httperr.Response
// @Router /api/checkables/{isbn}/availability [get]
func (h *CheckableHandler) Availability(c *gin.Context) {
	items, err := h.libraries.GetLibrariesWithAvailableCheckout(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	res, err := resdto.FromAvailability(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
