package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ironsheep/framecraft-mcp/internal/catalog"
	"github.com/ironsheep/framecraft-mcp/internal/compose"
)

const (
	serverName     = "framecraft-mcp"
	defaultVersion = "1.1.0"

	// maxLineSize bounds a single request line. Longer lines get an error
	// response.
	maxLineSize = 16 * 1024 * 1024
)

// Server handles MCP protocol communication
type Server struct {
	engine  *compose.Engine
	catalog *catalog.Catalog
	tools   []Tool
	version string
	maxLine int
	logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for request diagnostics. Nothing is logged by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithVersion sets the version reported by initialize.
func WithVersion(v string) Option {
	return func(s *Server) {
		if v != "" {
			s.version = v
		}
	}
}

// New creates a new MCP server instance
func New(engine *compose.Engine, opts ...Option) *Server {
	s := &Server{
		engine:  engine,
		catalog: engine.Catalog(),
		version: defaultVersion,
		maxLine: maxLineSize,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tools = toolDefinitions(s.catalog)
	return s
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one request per line from r and writes one response per line
// to w until r is exhausted. Requests are handled strictly in order. A line
// longer than the server's limit is answered with an invalid request error
// and skipped.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	reader := bufio.NewReaderSize(r, 64*1024)

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	for {
		line, tooLong, err := readLine(reader, s.maxLine)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read request: %w", err)
		}

		var resp *MCPResponse
		if tooLong {
			s.logger.Debug("request line too long", "limit", s.maxLine)
			resp = s.errorResponse(Null(), CodeInvalidRequest, "Invalid Request",
				fmt.Sprintf("request line exceeds %d bytes", s.maxLine))
		} else {
			line = bytes.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			resp = s.handleLine(line)
		}

		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// limit is read to its end and discarded, and tooLong is set.
func readLine(r *bufio.Reader, limit int) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return nil, false, err
		}
		if !tooLong {
			if len(line)+len(chunk) > limit {
				tooLong, line = true, nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

// handleLine turns one input line into exactly one response.
func (s *Server) handleLine(line []byte) *MCPResponse {
	v, err := ParseValue(line)
	if err != nil {
		s.logger.Debug("unparseable request", "error", err)
		return s.errorResponse(Null(), CodeParseError, "Parse error", err.Error())
	}

	req, rpcErr := decodeRequest(v)
	if rpcErr != nil {
		s.logger.Debug("invalid request", "reason", rpcErr.Data)
		return &MCPResponse{JSONRPC: "2.0", ID: requestID(v), Error: rpcErr}
	}

	return s.handleRequest(req)
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	s.logger.Debug("request", "method", req.Method)

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized", "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	default:
		return s.errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), nil)
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    serverName,
				"version": s.version,
			},
		},
	}
}

// handleToolsList returns the tool catalog in its fixed order.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": s.tools,
		},
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id Value, code int, message string, data interface{}) *MCPResponse {
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
