// Package tools exposes the assistant-facing operations as a registry of
// named tools with declared parameter schemas. The registry is deliberately
// decoupled from any agent framework: an adapter translates the schemas into
// whatever function-calling format its framework wants and funnels calls back
// through Dispatch.
package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"pizzabot/internal/pkg/errs"
)

// Parameter types understood by the schema translation layer.
const (
	TypeString  = "string"
	TypeInteger = "integer"
)

// Parameter declares one named argument of a tool.
type Parameter struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Enum        []string
}

// Args carries the raw arguments of one tool call. Values arrive as decoded
// JSON, so numbers are float64.
type Args map[string]any

// HandlerFunc executes one tool call and returns a JSON-serializable result.
type HandlerFunc func(ctx context.Context, args Args) (any, error)

// Tool binds an operation name to its parameter schema and handler.
type Tool struct {
	Name        string
	Description string
	Parameters  []Parameter
	Handler     HandlerFunc
}

// Registry holds the tool set in registration order.
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Tool),
	}
}

// Register adds a tool. Registering a duplicate name or a tool without a
// handler is a programming error and fails.
func (r *Registry) Register(tool Tool) error {
	if tool.Name == "" {
		return errs.NewValueIsRequiredError("tool.Name")
	}

	if tool.Handler == nil {
		return errs.NewValueIsRequiredError("tool.Handler")
	}

	if _, exists := r.byName[tool.Name]; exists {
		return errs.NewValueIsInvalidErrorWithCause("tool.Name",
			fmt.Errorf("tool %q is already registered", tool.Name))
	}

	r.tools = append(r.tools, tool)
	r.byName[tool.Name] = tool
	return nil
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Dispatch runs the named tool. Unknown names and missing required arguments
// are validation errors; everything else is up to the tool's handler.
func (r *Registry) Dispatch(ctx context.Context, name string, args Args) (any, error) {
	tool, found := r.byName[name]
	if !found {
		return nil, errs.NewValueIsInvalidErrorWithCause("tool",
			fmt.Errorf("unknown tool %q", name))
	}

	if args == nil {
		args = Args{}
	}

	for _, p := range tool.Parameters {
		if !p.Required {
			continue
		}
		if _, present := args[p.Name]; !present {
			return nil, errs.NewValueIsRequiredError(p.Name)
		}
	}

	return tool.Handler(ctx, args)
}

// String extracts an optional string argument; absent values yield the empty
// string.
func (a Args) String(name string) (string, error) {
	raw, present := a[name]
	if !present || raw == nil {
		return "", nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("expected a string, got %T", raw))
	}
	return s, nil
}

// Int64 extracts a required integer argument. JSON decoding hands numbers
// over as float64; numeric strings are accepted as a convenience because
// language models are not reliable about JSON number types.
func (a Args) Int64(name string) (int64, error) {
	raw, present := a[name]
	if !present || raw == nil {
		return 0, errs.NewValueIsRequiredError(name)
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%v is not an integer", v))
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
		}
		return n, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("expected an integer, got %T", raw))
	}
}

// IntOrDefault extracts an optional integer argument, falling back to def
// when absent.
func (a Args) IntOrDefault(name string, def int) (int, error) {
	if _, present := a[name]; !present {
		return def, nil
	}

	n, err := a.Int64(name)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
