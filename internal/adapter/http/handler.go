package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"gridworld/internal/adapter/render"
	"gridworld/internal/app/action"
	"gridworld/internal/app/authoring"
	"gridworld/internal/app/observe"
	"gridworld/internal/app/ports"
	"gridworld/internal/app/roster"
	"gridworld/internal/app/status"
	"gridworld/internal/app/trace"
	"gridworld/internal/app/turn"
	"gridworld/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	TurnUC      turn.UseCase
	RosterUC    roster.UseCase
	ActionUC    action.UseCase
	ObserveUC   observe.UseCase
	StatusUC    status.UseCase
	AuthoringUC authoring.UseCase
	TraceUC     trace.UseCase
	KPI         kpiSnapshotProvider
	World       *world.World
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	w := s.Group("/api/world")
	w.POST("/turn", h.newTurn)
	w.POST("/agents", h.addAgent)
	w.DELETE("/agents/:name", h.removeAgent)
	w.POST("/items", h.placeItem)
	w.POST("/terrain", h.placeTerrain)

	a := s.Group("/api/agent")
	a.POST("/action", h.action)
	a.POST("/observe", h.observe)
	a.POST("/status", h.status)

	s.GET("/api/trace", h.traceList)
	s.GET("/api/trace/export", h.traceExport)
	s.GET("/ops/kpi", h.kpi)
	s.GET("/ops/map", h.worldMap)
}

type turnRequest struct {
	Budget int `json:"budget"`
}

type addAgentRequest struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	Energy int    `json:"energy"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

type agentRequest struct {
	Agent string `json:"agent"`
}

type actionRequest struct {
	Agent  string        `json:"agent"`
	Intent action.Intent `json:"intent"`
}

type itemRequest struct {
	X    int        `json:"x"`
	Y    int        `json:"y"`
	Item world.Item `json:"item"`
}

type terrainRequest struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
}

func (h Handler) newTurn(c context.Context, ctx *app.RequestContext) {
	var body turnRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.TurnUC.Execute(c, turn.Request{Budget: body.Budget})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) addAgent(c context.Context, ctx *app.RequestContext) {
	var body addAgentRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.RosterUC.Add(c, roster.AddRequest{
		Name:   body.Name,
		Health: body.Health,
		Energy: body.Energy,
		X:      body.X,
		Y:      body.Y,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) removeAgent(c context.Context, ctx *app.RequestContext) {
	name := strings.TrimSpace(string(ctx.Param("name")))
	resp, err := h.RosterUC.Remove(c, roster.RemoveRequest{Name: name})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.Execute(c, action.Request{
		AgentName: body.Agent,
		Intent:    body.Intent,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	var body agentRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ObserveUC.Execute(c, observe.Request{AgentName: body.Agent})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	var body agentRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.StatusUC.Execute(c, status.Request{AgentName: body.Agent})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) placeItem(c context.Context, ctx *app.RequestContext) {
	var body itemRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.AuthoringUC.PlaceItem(c, authoring.ItemRequest{X: body.X, Y: body.Y, Item: body.Item})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) placeTerrain(c context.Context, ctx *app.RequestContext) {
	var body terrainRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.AuthoringUC.PlaceTerrain(c, authoring.TerrainRequest{
		X:    body.X,
		Y:    body.Y,
		Kind: authoring.TerrainKind(body.Kind),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) traceList(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.TraceUC.Execute(c, trace.Request{Limit: limit})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) traceExport(c context.Context, ctx *app.RequestContext) {
	var buf bytes.Buffer
	if err := h.TraceUC.Export(c, &buf); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="trace.jsonl.zst"`)
	ctx.Data(consts.StatusOK, "application/zstd", buf.Bytes())
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) worldMap(_ context.Context, ctx *app.RequestContext) {
	ctx.Data(consts.StatusOK, "text/plain; charset=utf-8", []byte(render.TextMap(h.World.Snapshot())))
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "agent_not_found", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, action.ErrInvalidDirection),
		errors.Is(err, turn.ErrInvalidRequest),
		errors.Is(err, roster.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, authoring.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, statusCode int, code, message string) {
	ctx.JSON(statusCode, map[string]string{
		"error":   code,
		"message": message,
	})
}
