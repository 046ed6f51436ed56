package server

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/framecraft-mcp/internal/catalog"
	"github.com/ironsheep/framecraft-mcp/internal/compose"
)

func listTools(t *testing.T, s *Server) []Tool {
	t.Helper()
	resps := exchange(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	var result struct {
		Tools []struct {
			Name        string                 `json:"name"`
			Description string                 `json:"description"`
			InputSchema map[string]interface{} `json:"inputSchema"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(resps[0].Result, &result); err != nil {
		t.Fatalf("failed to decode tools/list: %v", err)
	}
	tools := make([]Tool, 0, len(result.Tools))
	for _, tool := range result.Tools {
		tools = append(tools, Tool{Name: tool.Name, Description: tool.Description, InputSchema: tool.InputSchema})
	}
	return tools
}

func TestToolsListOrder(t *testing.T) {
	engine, err := compose.New(catalog.Builtin())
	if err != nil {
		t.Fatalf("compose.New failed: %v", err)
	}
	s := New(engine)

	// Listing twice must give the same answer.
	for i := 0; i < 2; i++ {
		tools := listTools(t, s)
		names := make([]string, 0, len(tools))
		for _, tool := range tools {
			names = append(names, tool.Name)
		}
		want := []string{"generate_frame", "list_templates", "list_devices", "generate_batch"}
		if diff := cmp.Diff(want, names); diff != "" {
			t.Errorf("tool names mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range listTools(t, newTestServer(t)) {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want object", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema has no properties object")
			}
		})
	}
}

func TestToolSchemasAdvertiseCatalog(t *testing.T) {
	s := newTestServer(t)
	tools := listTools(t, s)

	frame := tools[0].InputSchema
	if diff := cmp.Diff([]interface{}{"screenshot_path", "hero_text", "template", "output_path"}, frame["required"]); diff != "" {
		t.Errorf("generate_frame required mismatch (-want +got):\n%s", diff)
	}

	props := frame["properties"].(map[string]interface{})
	template := props["template"].(map[string]interface{})
	if diff := cmp.Diff([]interface{}{"ocean", "sunset"}, template["enum"]); diff != "" {
		t.Errorf("template enum mismatch (-want +got):\n%s", diff)
	}

	device := props["device"].(map[string]interface{})
	if diff := cmp.Diff([]interface{}{"tablet", "phone", "laptop"}, device["enum"]); diff != "" {
		t.Errorf("device enum mismatch (-want +got):\n%s", diff)
	}
	if device["default"] != "phone" {
		t.Errorf("device default: got %v, want phone (first handheld)", device["default"])
	}

	batch := tools[3].InputSchema
	if diff := cmp.Diff([]interface{}{"frames"}, batch["required"]); diff != "" {
		t.Errorf("generate_batch required mismatch (-want +got):\n%s", diff)
	}
	frames := batch["properties"].(map[string]interface{})["frames"].(map[string]interface{})
	if frames["type"] != "array" {
		t.Errorf("frames type: got %v, want array", frames["type"])
	}
}
