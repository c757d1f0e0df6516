package api

import (
	"errors"
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	cmds       commands.CarCommands
	rentalCmds commands.RentalCommands
	q          queries.CarQueries
}

func NewCarHandler(cmds commands.CarCommands, rentalCmds commands.RentalCommands, q queries.CarQueries) *CarHandler {
	return &CarHandler{cmds: cmds, rentalCmds: rentalCmds, q: q}
}

// @Summary List cars
// @Description Page-based list of cars, newest first
// @Tags cars
// @Produce json
// @Param pageSize query int false "Page size (default 10, max 100)"
// @Param page query int false "Page number starting at 1"
// @Success 200 {object} resdto.CarListResponse
// @Failure 400 {object} httperr.Response
// @Router /cars [get]
func (h *CarHandler) List(c *gin.Context) {
	var query reqdto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
		return
	}

	list, err := h.q.ListCars(c.Request.Context(), query.PageSize, query.Page)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidPagination) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
			return
		}
		_ = c.Error(err)
		return
	}

	resp, err := resdto.FromCarList(list)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	h.respondWithCar(c, id, http.StatusOK)
}

// @Summary Create car
// @Description New cars are never rented
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CarRequest true "Car"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	var req reqdto.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.ValidationDetails(err))
		return
	}

	result, err := h.cmds.CreateCar(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithNamedError(c, http.StatusUnprocessableEntity, err, nil)
		return
	}
	h.respondWithCar(c, result.CarID, http.StatusCreated)
}

// @Summary Replace car
// @Description Overwrites every field and clears the rented flag
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.CarRequest true "Car"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /cars/{id} [put]
func (h *CarHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.CarRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", reqdto.ValidationDetails(bindErr))
		return
	}

	if err = h.cmds.UpdateCar(c.Request.Context(), id, req.ToInput()); err != nil {
		if errs.Is(err, commands.ErrCarNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
			return
		}
		httperr.AbortWithNamedError(c, http.StatusUnprocessableEntity, err, nil)
		return
	}
	h.respondWithCar(c, id, http.StatusOK)
}

// @Summary Delete car
// @Description Responds 204 whether or not the car existed
// @Tags cars
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /cars/{id} [delete]
func (h *CarHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteCar(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Rent car
// @Description Books the car for the authenticated user unless an existing rental lies within the requested period
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.RentCarRequest true "Rental period"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /cars/{id}/rent [post]
func (h *CarHandler) Rent(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.RentCarRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", reqdto.ValidationDetails(bindErr))
		return
	}

	booked, err := h.rentalCmds.BookCar(c.Request.Context(), commands.BookCarRequest{
		CarID:  carID,
		UserID: userID,
		Start:  req.RentStartedAt,
		End:    req.RentEndedAt,
	})
	if err != nil {
		var rented *commands.CarAlreadyRentedError
		switch {
		case errors.As(err, &rented):
			details, mapErr := resdto.FromCarSnapshot(rented.Car)
			if mapErr != nil {
				_ = c.Error(mapErr)
				return
			}
			httperr.AbortWithNamedError(c, http.StatusUnprocessableEntity, err, details)
		case errs.Is(err, commands.ErrCarNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
		case errs.Is(err, commands.ErrInvalidWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "rentEndedAt must be after rentStartedAt", nil)
		default:
			_ = c.Error(err)
		}
		return
	}

	resp, err := resdto.FromRentalSnapshot(booked)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CarHandler) respondWithCar(c *gin.Context, id uuid.UUID, status int) {
	view, err := h.q.GetCar(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrCarNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
			return
		}
		_ = c.Error(err)
		return
	}
	resp, err := resdto.FromCarView(view)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(status, resp)
}
