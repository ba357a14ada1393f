package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"

	apperrors "medspa/pkg/errors"
)

// Param describes one tool argument for the agent runtime.
type Param struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// Tool is a single agent-callable operation. Execute returns plain text
// meant to be shown to (or summarized for) the operator driving the agent.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]Param
	Execute     func(ctx context.Context, args map[string]any) (string, error)
}

// Registry holds the toolset exposed to the agent runtime.
type Registry struct {
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name] = tool
}

func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all tools sorted by name.
func (r *Registry) List() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		out = append(out, tool)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Execute dispatches by tool name. Expected domain failures come back as
// readable text, not as errors; only unknown tools and infrastructure
// failures error out.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	tool, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("unknown tool %q", name)
	}
	out, err := tool.Execute(ctx, args)
	if err != nil {
		var appErr *apperrors.AppError
		if ok := errors.As(err, &appErr); ok && appErr.Code != apperrors.CodeInternal {
			return "Error: " + appErr.Message, nil
		}
		return "", err
	}
	return out, nil
}

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
