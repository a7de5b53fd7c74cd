package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"verdant/internal/app/game"
	"verdant/internal/app/observe"
	"verdant/internal/app/status"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// intentDispatcher is the orchestrator surface the transport needs.
type intentDispatcher interface {
	HandleIntent(in game.Intent) game.Result
}

type Handler struct {
	Game      intentDispatcher
	ObserveUC observe.UseCase
	StatusUC  status.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())
	s.GET("/healthz", h.healthz)

	api := s.Group("/api")
	api.GET("/view", h.view)
	api.GET("/status", h.status)
	api.POST("/intent", h.intent)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) healthz(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) view(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.Execute(c, observe.Request{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

// intent decodes one player command and runs it. Game-rule rejections
// are 200s with ok=false, only malformed requests are client errors.
func (h Handler) intent(_ context.Context, ctx *app.RequestContext) {
	if h.Game == nil {
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "not_ready", "game not ready")
		return
	}
	var in game.Intent
	if err := decodeJSON(ctx, &in); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if in.Type == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_intent_type", "intent type is required")
		return
	}
	res := h.Game.HandleIntent(in)
	if !res.OK && res.Reason == "unsupported_intent" {
		writeErrorBody(ctx, consts.StatusBadRequest, "unsupported_intent", "unsupported intent type")
		return
	}
	ctx.JSON(consts.StatusOK, res)
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

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, observe.ErrNotReady), errors.Is(err, status.ErrNotReady):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "not_ready", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
