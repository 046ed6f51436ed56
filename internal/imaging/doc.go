// Package imaging provides the pixel-level building blocks used to compose
// frames: loading screenshots, painting gradients and rounded shapes, soft
// shadows, aspect-preserving fits and lossless PNG export.
//
// All operations work with standard Go image types and use a coordinate
// system where (0,0) is the top-left corner, X increases rightward and Y
// increases downward. Rectangles follow image.Rectangle semantics: Min is
// inclusive, Max is exclusive.
//
// # Layers
//
// Shapes are painted into fresh, transparent layers sized to the shape and
// composited onto the destination afterwards. Layers are premultiplied
// *image.RGBA values, so they can be used both as sources and as masks with
// image/draw.
//
// # Libraries
//
//   - github.com/gogpu/gg rasterizes antialiased rounded rectangles and strokes
//   - github.com/disintegration/imaging resamples images
//   - github.com/anthonynsimon/bild blurs shadow layers
//   - github.com/lucasb-eyer/go-colorful blends gradient colors
//   - golang.org/x/image adds BMP, TIFF and WebP decoding
//
// # Error Handling
//
// Load distinguishes a missing file (ErrNotFound) from content that cannot be
// read or decoded (ErrDecode); match them with errors.Is. SavePNG never
// leaves a partially written file behind.
package imaging
