// Package compose renders marketing frames: a gradient canvas with a
// headline, an optional subtitle and a screenshot presented on a device.
//
// # Pipeline
//
// Compose resolves the template and device, loads the screenshot, then works
// in two passes. The measure pass wraps the text and decides where every
// element goes without drawing anything; the paint pass draws the gradient,
// the text and the screenshot band in that order. Because the band starts
// below the measured text, long headlines push the screenshot down rather
// than overlapping it.
//
// The canvas is always exactly the device size in pixels.
//
// # Device families
//
// Handhelds and tablets get a thin light bezel stroke around the rounded
// screenshot. Laptops get chassis artwork composited over the screenshot,
// aligned through OverlayGeometry so that the artwork's screen hole matches
// the displayed screenshot. The screenshot fills the hole and is cropped to
// its shape.
//
// # Errors
//
// Every failure is an *Error with a Kind. Use KindOf to classify errors; the
// message text is for people.
package compose
