// Package server implements the MCP (Model Context Protocol) server for raw
// camera frame statistics.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Captures are raw YUV420SP (NV21) files of concatenated frames; every tool
// takes the capture path plus frame width and height.
//
// Frame statistics:
//   - frame_info: Frame length, frame count and trailing bytes
//   - frame_channel_sums: Per-channel RGB totals of one frame
//   - frame_channel_averages: Per-channel RGB means of one frame
//   - frame_channel_average: Mean of one named channel
//   - frame_average_color: Mean color as hex, RGB and HSL
//
// Pulse:
//   - pulse_analyze: Heart rate, SpO2 and blood pressure over the capture
//
// # Caching
//
// Capture files are cached by path for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
