// Package server binds the dispatch table to an MCP stdio server.
package server

import (
	"context"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"ipma-mcp/internal/dispatch"
	"ipma-mcp/internal/logger"
)

const instructions = `This server exposes the Portuguese IPMA (Instituto Português do Mar e da
Atmosfera) open-data API: weather forecasts, active weather warnings, seismic
events, station observations and UV forecasts. All tools are read-only; city
names are matched against the IPMA location catalog (get_locations lists it).`

// New builds the MCP server and registers one tool per dispatch operation.
func New(d *dispatch.Dispatcher, version string) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"ipma-mcp",
		version,
		mcpserver.WithInstructions(instructions),
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)

	for _, op := range d.Operations() {
		s.AddTool(toolFromOperation(op), makeHandler(d, op.Name))
	}

	return s
}

// Serve runs the server over stdio until the client disconnects. Errors are
// logged to stderr; stdout carries only protocol frames.
func Serve(s *mcpserver.MCPServer) error {
	logger.Info("serving MCP over stdio")
	return mcpserver.ServeStdio(s,
		mcpserver.WithErrorLogger(log.New(os.Stderr, "", log.LstdFlags)))
}

// toolFromOperation translates an operation's parameter specs into the
// advertised tool schema. Every tool is read-only, idempotent and
// open-world: each call re-fetches live IPMA data.
func toolFromOperation(op *dispatch.Operation) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(op.Description),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}

	for _, p := range op.Params {
		switch p.Type {
		case "number":
			numOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
			if p.Required {
				numOpts = append(numOpts, mcp.Required())
			}
			if def, ok := p.Default.(float64); ok {
				numOpts = append(numOpts, mcp.DefaultNumber(def))
			}
			if p.Min != 0 {
				numOpts = append(numOpts, mcp.Min(p.Min))
			}
			if p.Max != 0 {
				numOpts = append(numOpts, mcp.Max(p.Max))
			}
			opts = append(opts, mcp.WithNumber(p.Name, numOpts...))
		default:
			strOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
			if p.Required {
				strOpts = append(strOpts, mcp.Required())
			}
			if def, ok := p.Default.(string); ok {
				strOpts = append(strOpts, mcp.DefaultString(def))
			}
			if len(p.Enum) > 0 {
				strOpts = append(strOpts, mcp.Enum(p.Enum...))
			}
			opts = append(opts, mcp.WithString(p.Name, strOpts...))
		}
	}

	return mcp.NewTool(op.Name, opts...)
}

func makeHandler(d *dispatch.Dispatcher, name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := d.Dispatch(ctx, name, req.GetArguments())
		if err != nil {
			// Dispatch errors carry their kind in the message; the
			// library surfaces them as JSON-RPC errors.
			return nil, err
		}
		return mcp.NewToolResultText(text), nil
	}
}
