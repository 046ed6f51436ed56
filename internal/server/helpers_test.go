package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/framecraft-mcp/internal/catalog"
	"github.com/ironsheep/framecraft-mcp/internal/compose"
)

// newTestServer serves a small catalog so frame generation stays fast.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	cat, err := catalog.New(
		[]catalog.TemplateSpec{
			{ID: "ocean", Name: "Ocean", TopHex: "#0F2027", BottomHex: "#2C5364"},
			{ID: "sunset", Name: "Sunset", TopHex: "#F37335", BottomHex: "#FDC830"},
		},
		[]catalog.Device{
			{ID: "tablet", Name: "Tablet (200 x 260)", Width: 200, Height: 260, Family: catalog.FamilyTablet},
			{ID: "phone", Name: "Phone (120 x 240)", Width: 120, Height: 240, Family: catalog.FamilyHandheld},
			{ID: "laptop", Name: "Laptop (320 x 200)", Width: 320, Height: 200, Family: catalog.FamilyLaptop},
		},
	)
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	engine, err := compose.New(cat)
	if err != nil {
		t.Fatalf("compose.New failed: %v", err)
	}
	return New(engine)
}

// createTestImageFile writes a solid PNG into a temp directory and returns its path.
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "screenshot.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return path
}

// wireResponse is a response line decoded without the server's own types.
type wireResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *MCPError       `json:"error"`
	raw     map[string]json.RawMessage
}

// exchange feeds lines to Serve and decodes every response line.
func exchange(t *testing.T, s *Server, lines ...string) []wireResponse {
	t.Helper()

	var out bytes.Buffer
	if err := s.Serve(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	var resps []wireResponse
	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		var r wireResponse
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			t.Fatalf("response %q is not JSON: %v", line, err)
		}
		if err := json.Unmarshal([]byte(line), &r.raw); err != nil {
			t.Fatalf("response %q is not an object: %v", line, err)
		}
		resps = append(resps, r)
	}
	return resps
}

// callTool invokes a tool over the wire and returns its result or RPC error.
func callTool(t *testing.T, s *Server, name string, args interface{}) (ToolCallResult, *MCPError) {
	t.Helper()

	params := map[string]interface{}{"name": name}
	if args != nil {
		params["arguments"] = args
	}
	line, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params":  params,
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	resps := exchange(t, s, string(line))
	if len(resps) != 1 {
		t.Fatalf("responses: got %d, want 1", len(resps))
	}
	if resps[0].Error != nil {
		return ToolCallResult{}, resps[0].Error
	}

	var result ToolCallResult
	if err := json.Unmarshal(resps[0].Result, &result); err != nil {
		t.Fatalf("result is not a tool result: %v", err)
	}
	return result, nil
}

func resultText(t *testing.T, r ToolCallResult) string {
	t.Helper()
	if len(r.Content) != 1 || r.Content[0].Type != "text" {
		t.Fatalf("content: got %+v, want one text item", r.Content)
	}
	return r.Content[0].Text
}

func pngSize(t *testing.T, path string) image.Point {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("%s is not a png: %v", path, err)
	}
	return image.Pt(cfg.Width, cfg.Height)
}
