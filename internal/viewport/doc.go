// Package viewport tracks the visible plot rectangle and the pan/zoom
// state machine that edits it.
//
// The controller has two states. Idle goes to Dragging on a primary-button
// press inside the plot; moves while Dragging shift the press-time
// rectangle by the anchor-to-cursor distance; release returns to Idle.
// Scrolling scales every bound by a fixed factor in either state.
package viewport
