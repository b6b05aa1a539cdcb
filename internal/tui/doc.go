// Package tui is the interactive terminal host: an expression field, a
// Braille plot panel driven by mouse pan and wheel zoom, and key bindings
// for clearing, resetting, theming and SVG export.
package tui
