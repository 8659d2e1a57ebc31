package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "lendly/internal/handler/dto/request"
	resdto "lendly/internal/handler/dto/response"
	"lendly/internal/handler/httperr"
	"lendly/internal/handler/middleware"
	"lendly/internal/usecase/commands"
	"lendly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book an item for a time period
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateBooking(c.Request.Context(), req.ToCommand(), renterID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
		case errors.Is(err, commands.ErrActorNotFound):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Unknown renter", nil)
		case errors.Is(err, commands.ErrInvalidPeriod), errors.Is(err, commands.ErrItemUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking", nil)
		case errors.Is(err, commands.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking period conflicts", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create booking failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Decide booking
// @Description Approve or reject a waiting booking for an owned item
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param approved query bool true "Approve (true) or reject (false)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved flag", nil)
		return
	}
	view, err := h.cmds.DecideBooking(c.Request.Context(), id, actorID, approved)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrActorNotFound):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Unknown actor", nil)
		case errors.Is(err, commands.ErrNotItemOwner):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Not the item owner", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Decide booking failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by ID (renter or item owner only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), viewerID, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, queries.ErrActorNotFound):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Unknown user", nil)
		case errors.Is(err, queries.ErrViewerNotAllowed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List bookings made by the authenticated user, filtered by state
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param state query string true "Bucket: ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	items, err := h.q.ListForRenter(c.Request.Context(), renterID, c.Query("state"))
	if err != nil {
		h.abortListError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary List bookings on owned items
// @Description List bookings placed on the authenticated user's items, filtered by state
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param state query string true "Bucket: ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	items, err := h.q.ListForOwner(c.Request.Context(), ownerID, c.Query("state"))
	if err != nil {
		h.abortListError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

func (h *BookingHandler) abortListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrUnknownBucket):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state filter", nil)
	case errors.Is(err, queries.ErrActorNotFound):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Unknown user", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
	}
}
