// Package ui owns the panel's interaction state: the current position in the
// menu graph, the edit sub-state of editable items, and the idle timer.
//
// Event flow:
//   - The idle loop turns button pulses into EventUp, EventDown and EventOk
//     and the one second tick into EventTick, then calls Dispatch.
//   - Dispatch moves the current group's widget, activates the highlighted
//     item, or follows its link through the registry. There is no navigation
//     stack; the Position alone says where the panel is.
//   - Refresh renders the current group into a reused display.Frame and hands
//     it to the display sink.
//
// All state in this package belongs to the goroutine running the idle loop.
package ui
