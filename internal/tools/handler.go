package tools

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apperrors "medspa/pkg/errors"
	"medspa/pkg/httputil"
	"medspa/pkg/logger"
)

// ToolInfo is the wire description of one tool for runtime discovery.
type ToolInfo struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Parameters  map[string]Param `json:"parameters"`
}

// ExecuteResponse wraps a tool's text output.
type ExecuteResponse struct {
	Tool   string `json:"tool"`
	Result string `json:"result"`
}

// Handler exposes the registry to an agent runtime over HTTP: discovery on
// GET /tools, invocation on POST /tools/:name with a JSON argument object.
type Handler struct {
	registry *Registry
	log      *logger.Logger
}

func NewHandler(registry *Registry, log *logger.Logger) *Handler {
	return &Handler{registry: registry, log: log}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/tools", h.ListTools)
	router.POST("/tools/:name", h.ExecuteTool)
}

func (h *Handler) ListTools(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	list := h.registry.List()
	out := make([]ToolInfo, 0, len(list))
	for _, tool := range list {
		out = append(out, ToolInfo{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
		})
	}
	httputil.WriteSuccess(w, out)
}

func (h *Handler) ExecuteTool(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("name")
	if _, ok := h.registry.Get(name); !ok {
		httputil.WriteError(w, apperrors.NotFound("Tool", name))
		return
	}

	args := make(map[string]any)
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			httputil.WriteError(w, apperrors.InvalidInput("Invalid request body"))
			return
		}
	}

	result, err := h.registry.Execute(r.Context(), name, args)
	if err != nil {
		h.log.Error("Tool execution failed", "tool", name, "error", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, ExecuteResponse{Tool: name, Result: result})
}
