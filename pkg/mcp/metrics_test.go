package mcp

import (
	"context"
	"errors"
	"testing"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallStatus(t *testing.T) {
	tests := []struct {
		name   string
		result *mcptypes.CallToolResult
		err    error
		want   string
	}{
		{name: "success", result: mcptypes.NewToolResultText("ok"), want: "ok"},
		{name: "tool error", result: mcptypes.NewToolResultError("bad input"), want: "error"},
		{name: "handler failure", err: errors.New("boom"), want: "failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, callStatus(tt.result, tt.err))
		})
	}
}

func TestInstrumentPassesThrough(t *testing.T) {
	want := mcptypes.NewToolResultText("done")
	handler := instrument("bungie_test", func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
		return want, nil
	})

	got, err := handler(context.Background(), mcptypes.CallToolRequest{})
	require.NoError(t, err)
	assert.Same(t, want, got)
}
