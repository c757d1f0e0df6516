package api

import (
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	q queries.RentalQueries
}

func NewRentalHandler(q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{q: q}
}

// @Summary List my rentals
// @Description Rentals booked by the authenticated user, newest first
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param pageSize query int false "Page size (default 10, max 100)"
// @Param page query int false "Page number starting at 1"
// @Success 200 {object} resdto.RentalListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /rentals [get]
func (h *RentalHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var query reqdto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
		return
	}

	list, err := h.q.ListUserRentals(c.Request.Context(), userID, query.PageSize, query.Page)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidPagination) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
			return
		}
		_ = c.Error(err)
		return
	}

	resp, err := resdto.FromRentalList(list)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
