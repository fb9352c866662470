// Package viz renders root-finding runs in the terminal.
//
// The package implements an interactive explorer using the Bubble Tea
// framework:
//
//   - [Model]: function menu plus a step-through view of the iteration
//   - [Canvas]: Braille-based pixel canvas for curve rendering
//   - [Window]: real-coordinate projection onto a canvas
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Space - Take one step
//	A     - Toggle auto-stepping
//	R     - Restart from x0
//	F/M   - Next function / next method
//	[]    - Walk back and forward through taken steps
//	T     - Cycle color themes
//	?     - Show help overlay
//	Esc   - Back to the function menu
//
// Static helpers ([ResidualPlot], [Window.Descent]) back the plot and
// curve commands, which render the same views without the TUI loop.
package viz
