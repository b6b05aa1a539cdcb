// Package viz renders curves and the viewport to the terminal.
//
//   - [Canvas]: Braille-based pixel canvas with per-cell color
//   - [Frame]: mapping between data space and canvas cells
//   - [Plot], [Render]: dashed axes plus curves, clipped to the frame
//   - [Theme]: interface colors, five built in
//
// Rendering is a pure function of the curves, frame and theme, so
// repeated redraws of unchanged state are identical.
package viz
