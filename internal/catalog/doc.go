// Package catalog holds the built-in gradient templates and target device
// sizes used to compose frames.
//
// Both registries are built once and never change afterwards. Lookups are
// case-insensitive (Unicode case folding) and report absence with a boolean
// rather than an error; callers decide whether a miss is a failure.
//
// Devices carry an explicit Family. The compositing engine uses it to pick
// the bezel treatment, so adding a device never depends on how it is named.
package catalog
