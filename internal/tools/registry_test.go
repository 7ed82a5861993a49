package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(name string) *Tool {
	return &Tool{
		Name:        name,
		Description: "Echoes its arguments.",
		Schema:      Schema{Type: "object", Properties: map[string]Property{}},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			return args, nil
		},
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(echoTool("echo")))
	assert.ErrorIs(t, r.Register(echoTool("echo")), ErrToolAlreadyRegistered)

	assert.Error(t, r.Register(&Tool{Name: "", Description: "x"}))
	assert.Error(t, r.Register(&Tool{Name: "no-exec", Description: "x"}))
}

func TestRegistryExecute(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(echoTool("echo")))

	outcome, err := r.Execute(context.Background(), "echo", map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "echo", outcome.Name)

	_, err = r.Execute(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestRegistryExecuteWrapsFailure(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	require.NoError(t, r.Register(&Tool{
		Name:        "explode",
		Description: "Always fails.",
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			return nil, boom
		},
	}))

	_, err := r.Execute(context.Background(), "explode", nil)
	assert.ErrorIs(t, err, boom)
}

func TestDefaultRegistryTools(t *testing.T) {
	r := NewDefaultRegistry()
	names := []string{}
	for _, tool := range r.List() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"find_cars", "find_concert_tickets", "find_hotels", "find_jobs", "find_movie_tickets"}, names)
}

func TestFindHotels(t *testing.T) {
	r := NewDefaultRegistry()

	outcome, err := r.Execute(context.Background(), "find_hotels", map[string]any{"location": "Lisbon"})
	require.NoError(t, err)
	hotels := outcome.Data
	require.NotNil(t, hotels)

	// Missing required arg degrades to an empty result set.
	outcome, err = r.Execute(context.Background(), "find_hotels", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, []any{}, outcome.Data)
}

func TestFindJobsDefaultsLocation(t *testing.T) {
	r := NewDefaultRegistry()
	outcome, err := r.Execute(context.Background(), "find_jobs", map[string]any{"job_title": "Go Developer"})
	require.NoError(t, err)
	require.NotNil(t, outcome.Data)
}
