// Package canvas runs the cooperative frame loop that draws paint tasks.
//
// A Canvas owns paint tasks and draws them, lowest z-index first, each time
// DrawFrame is called. The canvas never schedules itself: a host ticker
// (a vsync callback, a timer, or the polling [Ticker] in this package)
// keeps calling DrawFrame until IsValid reports that every transition has
// settled. Changing a property invalidates the canvas again, which is how
// hosts learn that more frames are needed.
//
// A Canvas is not safe for concurrent use; drive it from one goroutine.
package canvas
