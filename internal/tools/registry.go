// Package tools provides the pluggable capability registry: named lookup
// tools the dispatcher may invoke when the model requests a function call.
// Each tool carries a provider-neutral parameter schema; the schema package
// derives the provider-specific encodings from these descriptors.
package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"cognos/internal/logging"
	"cognos/internal/types"
)

// Property describes a single parameter for the JSON schema.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Schema is the provider-neutral parameter schema of a tool.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// AsMap renders the schema as the generic JSON-object form provider
// encodings are built from.
func (s Schema) AsMap() map[string]any {
	props := make(map[string]any, len(s.Properties))
	for name, p := range s.Properties {
		props[name] = map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
	}
	m := map[string]any{
		"type":       s.Type,
		"properties": props,
	}
	if len(s.Required) > 0 {
		m["required"] = s.Required
	}
	return m
}

// ExecuteFunc is the signature for tool execution.
type ExecuteFunc func(ctx context.Context, args map[string]any) (any, error)

// Tool is one registered capability.
type Tool struct {
	Name        string
	Description string
	Schema      Schema
	Execute     ExecuteFunc
}

// Validate checks the tool definition is complete.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("tool name required")
	}
	if t.Description == "" {
		return fmt.Errorf("tool %s: description required", t.Name)
	}
	if t.Execute == nil {
		return fmt.Errorf("tool %s: execute func required", t.Name)
	}
	return nil
}

// Registry holds the available tools. Thread-safe; supports registration
// at runtime.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds a tool. Duplicate names are rejected.
func (r *Registry) Register(tool *Tool) error {
	if err := tool.Validate(); err != nil {
		return fmt.Errorf("invalid tool: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrToolAlreadyRegistered, tool.Name)
	}
	r.tools[tool.Name] = tool
	logging.ToolsDebug("Registered tool: %s", tool.Name)
	return nil
}

// MustRegister registers a tool and panics on error. For static
// registration at construction time.
func (r *Registry) MustRegister(tool *Tool) {
	if err := r.Register(tool); err != nil {
		panic(fmt.Sprintf("failed to register tool %s: %v", tool.Name, err))
	}
}

// Get returns a tool by name, or nil.
func (r *Registry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// List returns all tools sorted by name.
func (r *Registry) List() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Execute runs a tool by name and wraps its result as a ToolOutcome.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (*types.ToolOutcome, error) {
	tool := r.Get(name)
	if tool == nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	logging.Tools("Executing tool: %s args=%d", name, len(args))
	data, err := tool.Execute(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("tool %s failed: %w", name, err)
	}
	return &types.ToolOutcome{Name: name, Data: data}, nil
}
