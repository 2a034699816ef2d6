package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// frameSchema builds an input schema for tools that read one frame of a raw
// capture. extra adds tool-specific properties; required lists them.
func frameSchema(extra map[string]interface{}, required ...string) map[string]interface{} {
	props := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to a raw YUV420SP (NV21) capture",
		},
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Frame width in pixels",
		},
		"height": map[string]interface{}{
			"type":        "integer",
			"description": "Frame height in pixels",
		},
		"frame_index": map[string]interface{}{
			"type":        "integer",
			"description": "0-based frame within the capture. Default 0",
			"default":     0,
		},
	}
	for k, v := range extra {
		props[k] = v
	}

	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   append([]string{"path", "width", "height"}, required...),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "frame_info",
			Description: "Report how a raw YUV420SP capture divides into frames of the given size: frame length, complete frame count and trailing bytes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a raw YUV420SP (NV21) capture",
					},
					"width":  map[string]interface{}{"type": "integer", "description": "Frame width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "Frame height in pixels"},
				},
				"required": []string{"path", "width", "height"},
			},
		},

		// Channel statistics
		{
			Name:        "frame_channel_sums",
			Description: "Decode one frame to RGB and return the sum of each channel over all pixels.",
			InputSchema: frameSchema(map[string]interface{}{
				"parallel": map[string]interface{}{
					"type":        "boolean",
					"description": "Sum row bands on multiple goroutines. Same result, faster on large frames",
					"default":     false,
				},
			}),
		},
		{
			Name:        "frame_channel_averages",
			Description: "Decode one frame to RGB and return the average of each channel (integer, truncated).",
			InputSchema: frameSchema(nil),
		},
		{
			Name:        "frame_channel_average",
			Description: "Return the average of a single RGB channel over one frame.",
			InputSchema: frameSchema(map[string]interface{}{
				"channel": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"red", "green", "blue"},
					"description": "Channel to average",
				},
			}, "channel"),
		},
		{
			Name:        "frame_average_color",
			Description: "Describe one frame's average color as hex, RGB and HSL.",
			InputSchema: frameSchema(nil),
		},

		// Pulse
		{
			Name:        "pulse_analyze",
			Description: "Estimate heart rate, SpO2 and blood pressure from a fingertip capture recorded with the torch on.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a raw YUV420SP (NV21) capture",
					},
					"width":  map[string]interface{}{"type": "integer", "description": "Frame width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "Frame height in pixels"},
					"fps": map[string]interface{}{
						"type":        "number",
						"description": "Capture frame rate. Default 30",
						"default":     30,
					},
				},
				"required": []string{"path", "width", "height"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
