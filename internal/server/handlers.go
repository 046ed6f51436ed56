package server

import (
	"fmt"
	"strings"

	"github.com/ironsheep/framecraft-mcp/internal/compose"
)

// argError reports a missing or mistyped tool argument. It is a tool-level
// failure, not a protocol error.
type argError struct {
	name string
}

func (e *argError) Error() string {
	return "missing required argument: " + e.name
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool output in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<output>"}]
//	}
//
// A missing or unknown tool name is a -32602 protocol error. A tool that runs
// and fails returns a normal result with "isError": true and the failure
// text, so the client can tell a broken request from a failed operation.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	name, ok := req.Params.StringField("name")
	if !ok {
		return s.errorResponse(req.ID, CodeInvalidParams, "Invalid params: missing tool name", nil)
	}

	args, ok := req.Params.Field("arguments")
	if _, isObj := args.Obj(); !ok || !isObj {
		args = Object()
	}

	handler, ok := s.toolHandler(name)
	if !ok {
		return s.errorResponse(req.ID, CodeInvalidParams, fmt.Sprintf("Unknown tool: %s", name), nil)
	}

	text, err := handler(args)
	result := textResult(text)
	if err != nil {
		s.logger.Debug("tool failed", "tool", name, "error", err)
		result = errorResult(err)
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
}

type toolFunc func(args Value) (string, error)

// toolHandler dispatches a tool name to its handler function.
func (s *Server) toolHandler(name string) (toolFunc, bool) {
	switch name {
	case toolGenerateFrame:
		return s.handleGenerateFrame, true
	case toolListTemplates:
		return s.handleListTemplates, true
	case toolListDevices:
		return s.handleListDevices, true
	case toolGenerateBatch:
		return s.handleGenerateBatch, true
	default:
		return nil, false
	}
}

// === Tool Handlers ===

func (s *Server) handleGenerateFrame(args Value) (string, error) {
	entry, err := frameArgs(args)
	if err != nil {
		return "", err
	}
	subtitle, _ := args.StringField("subtitle")
	device, _ := args.StringField("device")

	path, err := s.engine.Generate(compose.Request{
		ScreenshotPath: entry.ScreenshotPath,
		HeroText:       entry.HeroText,
		Subtitle:       subtitle,
		TemplateID:     entry.TemplateID,
		DeviceID:       device,
	}, entry.OutputPath)
	if err != nil {
		return "", err
	}

	return "Frame generated successfully at: " + path, nil
}

func (s *Server) handleListTemplates(Value) (string, error) {
	var b strings.Builder
	b.WriteString("Available templates:")
	for _, t := range s.catalog.Templates() {
		fmt.Fprintf(&b, "\n- %s: %s (%s → %s)", t.ID, t.Name, t.TopHex(), t.BottomHex())
	}
	return b.String(), nil
}

func (s *Server) handleListDevices(Value) (string, error) {
	var b strings.Builder
	b.WriteString("Available devices:")
	for _, d := range s.catalog.Devices() {
		fmt.Fprintf(&b, "\n- %s: %s", d.ID, d.Name)
	}
	return b.String(), nil
}

// handleGenerateBatch generates every well-formed entry of frames in order.
// Entries missing a required field are skipped. The first composition or
// export failure ends the call as a tool failure.
func (s *Server) handleGenerateBatch(args Value) (string, error) {
	frames, ok := fieldArray(args, "frames")
	if !ok {
		return "", &argError{name: "frames"}
	}
	device, _ := args.StringField("device")

	entries := make([]compose.BatchEntry, 0, len(frames))
	for i, f := range frames {
		entry, err := frameArgs(f)
		if err != nil {
			s.logger.Debug("skipping batch entry", "index", i, "reason", err)
			continue
		}
		entry.Subtitle, _ = f.StringField("subtitle")
		entries = append(entries, entry)
	}

	paths, err := s.engine.GenerateBatch(entries, device)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Generated %d frames:\n%s", len(paths), strings.Join(paths, "\n")), nil
}

// frameArgs extracts the required per-frame arguments. Paths must be
// non-empty; hero text may be empty.
func frameArgs(v Value) (compose.BatchEntry, error) {
	var entry compose.BatchEntry
	fields := []struct {
		name     string
		dst      *string
		nonEmpty bool
	}{
		{"screenshot_path", &entry.ScreenshotPath, true},
		{"hero_text", &entry.HeroText, false},
		{"template", &entry.TemplateID, false},
		{"output_path", &entry.OutputPath, true},
	}
	for _, f := range fields {
		s, ok := v.StringField(f.name)
		if !ok || (f.nonEmpty && s == "") {
			return compose.BatchEntry{}, &argError{name: f.name}
		}
		*f.dst = s
	}
	return entry, nil
}

func fieldArray(v Value, key string) ([]Value, bool) {
	f, ok := v.Field(key)
	if !ok {
		return nil, false
	}
	return f.Arr()
}
