package catalog

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
)

// Family groups devices that share a bezel treatment and layout policy.
type Family int

const (
	// FamilyHandheld covers phones.
	FamilyHandheld Family = iota
	// FamilyTablet covers tablets. Treated like handhelds when compositing.
	FamilyTablet
	// FamilyLaptop covers wide laptop-class canvases drawn with a chassis overlay.
	FamilyLaptop
)

func (f Family) String() string {
	switch f {
	case FamilyHandheld:
		return "handheld"
	case FamilyTablet:
		return "tablet"
	case FamilyLaptop:
		return "laptop"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// TemplateSpec declares a gradient template by its hex colors.
type TemplateSpec struct {
	ID        string
	Name      string
	TopHex    string
	BottomHex string
}

// Template is a named pair of gradient colors.
type Template struct {
	ID     string
	Name   string
	Top    colorful.Color
	Bottom colorful.Color
}

// TopHex returns the top color as "#RRGGBB".
func (t Template) TopHex() string { return upperHex(t.Top) }

// BottomHex returns the bottom color as "#RRGGBB".
func (t Template) BottomHex() string { return upperHex(t.Bottom) }

func upperHex(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// Device is a named output canvas size in pixels.
type Device struct {
	ID     string
	Name   string
	Width  int
	Height int
	Family Family
}

// Catalog is an immutable registry of templates and devices.
type Catalog struct {
	templates     []Template
	devices       []Device
	templateIndex map[string]int
	deviceIndex   map[string]int
}

// New builds a catalog from declarations, preserving their order.
//
// Template colors must be "#RRGGBB" (or "#RGB"), ids must be unique after
// case folding, and device dimensions must be positive.
func New(templates []TemplateSpec, devices []Device) (*Catalog, error) {
	c := &Catalog{
		templates:     make([]Template, 0, len(templates)),
		devices:       make([]Device, 0, len(devices)),
		templateIndex: make(map[string]int, len(templates)),
		deviceIndex:   make(map[string]int, len(devices)),
	}

	for _, spec := range templates {
		key := foldID(spec.ID)
		if key == "" {
			return nil, fmt.Errorf("template %q: empty id", spec.Name)
		}
		if _, dup := c.templateIndex[key]; dup {
			return nil, fmt.Errorf("template %q: duplicate id", spec.ID)
		}
		top, err := colorful.Hex(spec.TopHex)
		if err != nil {
			return nil, fmt.Errorf("template %q: top color: %w", spec.ID, err)
		}
		bottom, err := colorful.Hex(spec.BottomHex)
		if err != nil {
			return nil, fmt.Errorf("template %q: bottom color: %w", spec.ID, err)
		}
		c.templateIndex[key] = len(c.templates)
		c.templates = append(c.templates, Template{ID: spec.ID, Name: spec.Name, Top: top, Bottom: bottom})
	}

	for _, d := range devices {
		key := foldID(d.ID)
		if key == "" {
			return nil, fmt.Errorf("device %q: empty id", d.Name)
		}
		if _, dup := c.deviceIndex[key]; dup {
			return nil, fmt.Errorf("device %q: duplicate id", d.ID)
		}
		if d.Width <= 0 || d.Height <= 0 {
			return nil, fmt.Errorf("device %q: invalid size %dx%d", d.ID, d.Width, d.Height)
		}
		c.deviceIndex[key] = len(c.devices)
		c.devices = append(c.devices, d)
	}

	return c, nil
}

// FindTemplate looks a template up by id, ignoring case.
func (c *Catalog) FindTemplate(id string) (Template, bool) {
	i, ok := c.templateIndex[foldID(id)]
	if !ok {
		return Template{}, false
	}
	return c.templates[i], true
}

// FindDevice looks a device up by id, ignoring case.
func (c *Catalog) FindDevice(id string) (Device, bool) {
	i, ok := c.deviceIndex[foldID(id)]
	if !ok {
		return Device{}, false
	}
	return c.devices[i], true
}

// Templates returns every template in declaration order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Devices returns every device in declaration order.
func (c *Catalog) Devices() []Device {
	out := make([]Device, len(c.devices))
	copy(out, c.devices)
	return out
}

// DefaultDevice returns the first handheld device, falling back to the first
// device of any family. ok is false for a catalog without devices.
func (c *Catalog) DefaultDevice() (Device, bool) {
	for _, d := range c.devices {
		if d.Family == FamilyHandheld {
			return d, true
		}
	}
	if len(c.devices) == 0 {
		return Device{}, false
	}
	return c.devices[0], true
}

// foldID normalizes an id for lookup. A Caser is stateful, so each call gets
// its own.
func foldID(id string) string {
	return cases.Fold().String(id)
}
