package tools_test

import (
	"context"
	"testing"

	"pizzabot/internal/adapters/in/tools"
	"pizzabot/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func echoTool(name string) tools.Tool {
	return tools.Tool{
		Name:        name,
		Description: "test tool",
		Handler: func(_ context.Context, args tools.Args) (any, error) {
			return args, nil
		},
	}
}

func TestRegistry_Register_RejectsDuplicatesAndIncomplete(t *testing.T) {
	r := tools.NewRegistry()

	require.NoError(t, r.Register(echoTool("get_menu")))

	err := r.Register(echoTool("get_menu"))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	err = r.Register(tools.Tool{Name: "no_handler"})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	err = r.Register(tools.Tool{Handler: echoTool("x").Handler})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRegistry_Tools_PreservesRegistrationOrder(t *testing.T) {
	r := tools.NewRegistry()
	for _, name := range []string{"get_menu", "start_order", "checkout"} {
		require.NoError(t, r.Register(echoTool(name)))
	}

	registered := r.Tools()
	require.Len(t, registered, 3)
	require.Equal(t, "get_menu", registered[0].Name)
	require.Equal(t, "start_order", registered[1].Name)
	require.Equal(t, "checkout", registered[2].Name)
}

func TestRegistry_Dispatch_UnknownTool(t *testing.T) {
	r := tools.NewRegistry()

	_, err := r.Dispatch(t.Context(), "teleport_pizza", nil)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegistry_Dispatch_EnforcesRequiredParameters(t *testing.T) {
	r := tools.NewRegistry()
	tool := echoTool("add_pizza")
	tool.Parameters = []tools.Parameter{
		{Name: "order_id", Type: tools.TypeInteger, Required: true},
		{Name: "qty", Type: tools.TypeInteger},
	}
	require.NoError(t, r.Register(tool))

	_, err := r.Dispatch(t.Context(), "add_pizza", tools.Args{"qty": float64(2)})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	result, err := r.Dispatch(t.Context(), "add_pizza", tools.Args{"order_id": float64(7)})
	require.NoError(t, err)
	require.Equal(t, tools.Args{"order_id": float64(7)}, result)
}

func TestArgs_String(t *testing.T) {
	args := tools.Args{"name": "Ali", "qty": float64(2)}

	s, err := args.String("name")
	require.NoError(t, err)
	require.Equal(t, "Ali", s)

	// Absent is empty, not an error
	s, err = args.String("missing")
	require.NoError(t, err)
	require.Equal(t, "", s)

	_, err = args.String("qty")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestArgs_Int64(t *testing.T) {
	args := tools.Args{
		"float":      float64(7),
		"fractional": float64(7.5),
		"text":       "42",
		"junk":       "not-a-number",
	}

	n, err := args.Int64("float")
	require.NoError(t, err)
	require.Equal(t, int64(7), n)

	// Models sometimes send numbers as strings
	n, err = args.Int64("text")
	require.NoError(t, err)
	require.Equal(t, int64(42), n)

	_, err = args.Int64("fractional")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = args.Int64("junk")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = args.Int64("missing")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestArgs_IntOrDefault(t *testing.T) {
	args := tools.Args{"qty": float64(3)}

	n, err := args.IntOrDefault("qty", 1)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = args.IntOrDefault("missing", 1)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
