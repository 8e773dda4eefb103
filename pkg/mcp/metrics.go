package mcp

import (
	"context"
	"time"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var toolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bungienet_mcp_tool_calls",
	Help: "MCP tool calls by outcome",
}, []string{"tool", "status"})

var toolCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "bungienet_mcp_tool_call_duration",
	Help:    "Time to answer an MCP tool call",
	Buckets: prometheus.ExponentialBuckets(0.005, 2, 14),
}, []string{"tool", "status"})

// callStatus labels a tool outcome: "ok", "error" for a tool-level error
// result, or "failure" when the handler itself failed.
func callStatus(result *mcptypes.CallToolResult, err error) string {
	switch {
	case err != nil:
		return "failure"
	case result != nil && result.IsError:
		return "error"
	default:
		return "ok"
	}
}

// instrument records the outcome and latency of every call to handler.
func instrument(name string, handler mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
		start := time.Now()
		result, err := handler(ctx, req)

		status := callStatus(result, err)
		toolCalls.WithLabelValues(name, status).Inc()
		toolCallDuration.WithLabelValues(name, status).Observe(time.Since(start).Seconds())
		return result, err
	}
}
