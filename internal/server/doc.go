// Package server implements the MCP (Model Context Protocol) server that
// exposes frame generation as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout (one per line, written immediately)
//
// Requests are handled one at a time, in order. Every non-blank input line
// gets exactly one response line, including notifications/initialized.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - notifications/initialized: Handshake acknowledgment
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - generate_frame: Compose one frame and save it as PNG
//   - list_templates: List gradient templates and their colors
//   - list_devices: List output device sizes
//   - generate_batch: Compose several frames on one device
//
// # Error Handling
//
// Errors come in two tiers. Protocol violations are JSON-RPC error responses:
//   - -32700: the line is not valid JSON (id is null)
//   - -32600: the line is not a request object or has no method
//   - -32601: unknown method
//   - -32602: tools/call without a tool name, or with an unknown tool
//
// A known tool that fails (missing argument, unknown template, unreadable
// screenshot, unwritable output) still produces a successful response. Its
// result carries "isError": true and the failure as text.
//
// # Usage
//
//	engine, err := compose.New(catalog.Builtin())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(engine)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
