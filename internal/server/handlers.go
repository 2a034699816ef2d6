package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/yuv-pulse-mcp/internal/frames"
	"github.com/ironsheep/yuv-pulse-mcp/internal/pulse"
	"github.com/ironsheep/yuv-pulse-mcp/internal/yuv"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "frame_channel_sums").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// AbsentResult is returned when a statistic has no data to report.
type AbsentResult struct {
	Absent bool `json:"absent"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		log.WithField("tool", params.Name).WithError(err).Debug("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "frame_info":
		return s.handleFrameInfo(args)

	// Channel statistics
	case "frame_channel_sums":
		return s.handleFrameChannelSums(args)
	case "frame_channel_averages":
		return s.handleFrameChannelAverages(args)
	case "frame_channel_average":
		return s.handleFrameChannelAverage(args)
	case "frame_average_color":
		return s.handleFrameAverageColor(args)

	// Pulse
	case "pulse_analyze":
		return s.handlePulseAnalyze(ctx, args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type frameArgs struct {
	Path       string `json:"path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FrameIndex int    `json:"frame_index"`
}

// loadFrame reads the requested frame from the cached capture.
func (s *Server) loadFrame(a frameArgs) ([]byte, error) {
	data, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return frames.Extract(data, a.Width, a.Height, a.FrameIndex)
}

func (s *Server) handleFrameInfo(args json.RawMessage) (interface{}, error) {
	var a frameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return frames.Inspect(s.cache, a.Path, a.Width, a.Height)
}

// === Channel Statistic Handlers ===

type frameChannelSumsArgs struct {
	frameArgs
	Parallel bool `json:"parallel"`
}

func (s *Server) handleFrameChannelSums(args json.RawMessage) (interface{}, error) {
	var a frameChannelSumsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	frame, err := s.loadFrame(a.frameArgs)
	if err != nil {
		return nil, err
	}

	sum := yuv.Sums
	if a.Parallel {
		sum = yuv.SumsParallel
	}
	sums, err := sum(frame, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	if sums == nil {
		return AbsentResult{Absent: true}, nil
	}
	return sums, nil
}

func (s *Server) handleFrameChannelAverages(args json.RawMessage) (interface{}, error) {
	var a frameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	frame, err := s.loadFrame(a)
	if err != nil {
		return nil, err
	}

	avg, err := yuv.Averages(frame, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	if avg == nil {
		return AbsentResult{Absent: true}, nil
	}
	return avg, nil
}

type frameChannelAverageArgs struct {
	frameArgs
	Channel string `json:"channel"`
}

// ChannelAverageResult reports a single channel average.
type ChannelAverageResult struct {
	Channel string `json:"channel"`
	Average int    `json:"average"`
}

func (s *Server) handleFrameChannelAverage(args json.RawMessage) (interface{}, error) {
	var a frameChannelAverageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ch, err := yuv.ParseChannel(a.Channel)
	if err != nil {
		return nil, err
	}
	frame, err := s.loadFrame(a.frameArgs)
	if err != nil {
		return nil, err
	}

	avg, err := yuv.ChannelAverage(frame, a.Width, a.Height, ch)
	if err != nil {
		return nil, err
	}
	return &ChannelAverageResult{Channel: ch.String(), Average: avg}, nil
}

func (s *Server) handleFrameAverageColor(args json.RawMessage) (interface{}, error) {
	var a frameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	frame, err := s.loadFrame(a)
	if err != nil {
		return nil, err
	}

	avg, err := yuv.Averages(frame, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	if avg == nil {
		return AbsentResult{Absent: true}, nil
	}
	return yuv.DescribeAverage(*avg), nil
}

// === Pulse Handlers ===

type pulseAnalyzeArgs struct {
	Path   string  `json:"path"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	FPS    float64 `json:"fps"`
}

func (s *Server) handlePulseAnalyze(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a pulseAnalyzeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.FPS == 0 {
		a.FPS = 30
	}

	data, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	src, err := frames.NewReader(bytes.NewReader(data), a.Width, a.Height)
	if err != nil {
		return nil, err
	}

	report, err := pulse.Analyze(ctx, src, a.Width, a.Height, a.FPS, s.pulse, nil)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"path":         a.Path,
		"frames":       report.Frames,
		"measurements": len(report.Measurements),
	}).Info("pulse analysis complete")
	return report, nil
}
