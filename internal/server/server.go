package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/yuv-pulse-mcp/internal/frames"
	"github.com/ironsheep/yuv-pulse-mcp/internal/logger"
	"github.com/ironsheep/yuv-pulse-mcp/internal/pulse"
)

var log = logger.Log

// maxRequestLine bounds one JSON-RPC line. Requests carry capture paths,
// never frame data, so 1 MiB is generous.
const maxRequestLine = 1024 * 1024

// Server answers MCP requests for frame statistics and pulse analysis.
// Captures are read through a shared cache that lives as long as the Server.
type Server struct {
	cache   *frames.Cache
	pulse   pulse.Config
	version string
}

// MCPRequest is one JSON-RPC 2.0 call. ID is nil for notifications.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse carries either Result or Error for the request with the same ID.
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError is the JSON-RPC error object. Data holds the Go error text.
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New returns a Server that reports version in its initialize handshake.
func New(version string) *Server {
	return &Server{
		cache:   frames.NewCache(),
		pulse:   pulse.DefaultConfig(),
		version: version,
	}
}

// WithPulseConfig replaces the configuration used by pulse_analyze.
func (s *Server) WithPulseConfig(cfg pulse.Config) *Server {
	s.pulse = cfg
	return s
}

// Run serves stdin and stdout until stdin closes or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve answers newline-delimited requests from r on w, one line per
// response. ctx is handed to every tool call, so cancelling it aborts a
// running pulse analysis as well as the loop itself.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestLine)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.WithError(err).Warn("failed to parse request")
			continue
		}
		log.WithField("method", req.Method).Debug("request")

		if resp := s.handleRequest(ctx, &req); resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.WithError(err).Error("failed to encode response")
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}

func (s *Server) handleRequest(ctx context.Context, req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "yuv-pulse-mcp",
				"version": s.version,
			},
		},
	}
}
