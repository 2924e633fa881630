package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/yungbote/something-core/internal/domain/thing"
	"github.com/yungbote/something-core/internal/http/response"
	"github.com/yungbote/something-core/internal/pkg/dbctx"
	"github.com/yungbote/something-core/internal/services/foundations/things"
)

type ThingHandler struct {
	things things.Service
}

func NewThingHandler(things things.Service) *ThingHandler {
	return &ThingHandler{things: things}
}

// POST /api/things
func (h *ThingHandler) Create(c *gin.Context) {
	var req types.Thing
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	thing, err := h.things.AddThing(dbctx.Context{Ctx: c.Request.Context()}, &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"thing": thing})
}

// GET /api/things
func (h *ThingHandler) List(c *gin.Context) {
	out := []*types.Thing{}
	for thing, err := range h.things.RetrieveAllThings(dbctx.Context{Ctx: c.Request.Context()}) {
		if err != nil {
			response.RespondServiceError(c, err)
			return
		}
		out = append(out, thing)
	}
	response.RespondOK(c, gin.H{"things": out})
}

// GET /api/things/:id
func (h *ThingHandler) Get(c *gin.Context) {
	id, ok := thingIDParam(c)
	if !ok {
		return
	}
	thing, err := h.things.RetrieveThingByID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"thing": thing})
}

// PUT /api/things
func (h *ThingHandler) Update(c *gin.Context) {
	var req types.Thing
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	thing, err := h.things.ModifyThing(dbctx.Context{Ctx: c.Request.Context()}, &req)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"thing": thing})
}

// DELETE /api/things/:id
func (h *ThingHandler) Delete(c *gin.Context) {
	id, ok := thingIDParam(c)
	if !ok {
		return
	}
	thing, err := h.things.RemoveThingByID(dbctx.Context{Ctx: c.Request.Context()}, id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"thing": thing})
}

func thingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	return id, true
}
