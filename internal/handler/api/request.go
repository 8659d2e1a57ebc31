package api

import (
	"errors"
	"net/http"

	reqdto "lendly/internal/handler/dto/request"
	resdto "lendly/internal/handler/dto/response"
	"lendly/internal/handler/httperr"
	"lendly/internal/handler/middleware"
	"lendly/internal/usecase/commands"
	"lendly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Create item request
// @Description Post a request describing an item the user wants to rent
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequestRequest true "Create request"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateRequest(c.Request.Context(), req.ToCommand(), requesterID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrActorNotFound):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Unknown requester", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create request failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary Get item request
// @Description Get an item request with the items offered against it
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
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
		case errors.Is(err, queries.ErrRequestNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load request", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List own requests
// @Description List item requests posted by the authenticated user
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestResponse
// @Failure 401 {object} map[string]string
// @Router /requests [get]
func (h *RequestHandler) ListOwn(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListOwn(c.Request.Context(), requesterID)
	if err != nil {
		h.abortListError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestList(views))
}

// @Summary List others' requests
// @Description List item requests posted by other users
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RequestResponse
// @Failure 401 {object} map[string]string
// @Router /requests/all [get]
func (h *RequestHandler) ListOthers(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListOthers(c.Request.Context(), requesterID)
	if err != nil {
		h.abortListError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestList(views))
}

func (h *RequestHandler) abortListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrActorNotFound):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Unknown user", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list requests", nil)
	}
}
