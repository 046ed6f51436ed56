package server

import (
	"encoding/json"
)

// JSON-RPC error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
)

// protocolVersion is the MCP revision this server speaks.
const protocolVersion = "2024-11-05"

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      Value  `json:"id"`
	Method  string `json:"method"`
	Params  Value  `json:"params"`
}

// MCPResponse represents an outgoing JSON-RPC response. It is encoded with
// exactly one of result or error.
type MCPResponse struct {
	JSONRPC string
	ID      Value
	Result  interface{}
	Error   *MCPError
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MarshalJSON writes the error member when Error is set and the result
// member otherwise. A nil Result is written as an empty object.
func (r MCPResponse) MarshalJSON() ([]byte, error) {
	jsonrpc := r.JSONRPC
	if jsonrpc == "" {
		jsonrpc = "2.0"
	}

	if r.Error != nil {
		return json.Marshal(struct {
			JSONRPC string    `json:"jsonrpc"`
			ID      Value     `json:"id"`
			Error   *MCPError `json:"error"`
		}{jsonrpc, r.ID, r.Error})
	}

	result := r.Result
	if result == nil {
		result = struct{}{}
	}
	return json.Marshal(struct {
		JSONRPC string      `json:"jsonrpc"`
		ID      Value       `json:"id"`
		Result  interface{} `json:"result"`
	}{jsonrpc, r.ID, result})
}

// ContentItem is one block of tool output.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolCallResult is the result of tools/call. IsError marks a tool that ran
// but failed, as opposed to a protocol error.
type ToolCallResult struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

func textResult(text string) ToolCallResult {
	return ToolCallResult{Content: []ContentItem{{Type: "text", Text: text}}}
}

func errorResult(err error) ToolCallResult {
	return ToolCallResult{
		Content: []ContentItem{{Type: "text", Text: "Error: " + err.Error()}},
		IsError: true,
	}
}

// decodeRequest validates a parsed line as a request envelope. On failure it
// returns the error to send back.
func decodeRequest(v Value) (*MCPRequest, *MCPError) {
	if _, ok := v.Obj(); !ok {
		return nil, &MCPError{Code: CodeInvalidRequest, Message: "Invalid request", Data: "request must be a JSON object"}
	}

	method, ok := v.StringField("method")
	if !ok {
		return nil, &MCPError{Code: CodeInvalidRequest, Message: "Invalid request", Data: "missing method"}
	}

	req := &MCPRequest{Method: method}
	req.JSONRPC, _ = v.StringField("jsonrpc")
	req.ID, _ = v.Field("id")
	req.Params, _ = v.Field("params")
	return req, nil
}

// requestID returns the id of a parsed line if it has one, or null.
func requestID(v Value) Value {
	id, _ := v.Field("id")
	return id
}
