package server

import (
	"github.com/ironsheep/framecraft-mcp/internal/catalog"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Tool names, in the order tools/list reports them.
const (
	toolGenerateFrame = "generate_frame"
	toolListTemplates = "list_templates"
	toolListDevices   = "list_devices"
	toolGenerateBatch = "generate_batch"
)

// toolDefinitions returns all available tools. Template and device ids are
// advertised as enums taken from cat. The schemas are informational; handlers
// validate arguments themselves.
func toolDefinitions(cat *catalog.Catalog) []Tool {
	templateIDs := make([]string, 0)
	for _, t := range cat.Templates() {
		templateIDs = append(templateIDs, t.ID)
	}
	deviceIDs := make([]string, 0)
	for _, d := range cat.Devices() {
		deviceIDs = append(deviceIDs, d.ID)
	}

	deviceProperty := map[string]interface{}{
		"type": "string",
		"enum": deviceIDs,
	}
	if d, ok := cat.DefaultDevice(); ok {
		deviceProperty["default"] = d.ID
	}

	frameProperties := func() map[string]interface{} {
		return map[string]interface{}{
			"screenshot_path": map[string]interface{}{
				"type":        "string",
				"description": "Absolute path to the screenshot image",
			},
			"hero_text": map[string]interface{}{
				"type":        "string",
				"description": "Main headline text",
			},
			"subtitle": map[string]interface{}{
				"type":        "string",
				"description": "Optional subtitle text",
			},
			"template": map[string]interface{}{
				"type":        "string",
				"description": "Gradient template id",
				"enum":        templateIDs,
			},
			"output_path": map[string]interface{}{
				"type":        "string",
				"description": "Where to save the generated PNG",
			},
		}
	}

	single := frameProperties()
	single["device"] = withDescription(deviceProperty, "Target device size")

	return []Tool{
		{
			Name:        toolGenerateFrame,
			Description: "Generate an App Store marketing frame with a gradient background, headline text and the screenshot on a device.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": single,
				"required":   []string{"screenshot_path", "hero_text", "template", "output_path"},
			},
		},
		{
			Name:        toolListTemplates,
			Description: "List the available gradient templates with their colors.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        toolListDevices,
			Description: "List the available device sizes.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        toolGenerateBatch,
			Description: "Generate multiple frames at once. Each frame requires screenshot_path, hero_text, template, and output_path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"frames": map[string]interface{}{
						"type":        "array",
						"description": "Array of frames to generate",
						"items": map[string]interface{}{
							"type":       "object",
							"properties": frameProperties(),
							"required":   []string{"screenshot_path", "hero_text", "template", "output_path"},
						},
					},
					"device": withDescription(deviceProperty, "Device size for all frames"),
				},
				"required": []string{"frames"},
			},
		},
	}
}

func withDescription(prop map[string]interface{}, description string) map[string]interface{} {
	out := make(map[string]interface{}, len(prop)+1)
	for k, v := range prop {
		out[k] = v
	}
	out["description"] = description
	return out
}
