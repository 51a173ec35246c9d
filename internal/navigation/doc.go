// Package navigation provides an in-memory navigation history.
//
// A History behaves like a browser history that never leaves the process:
// it holds an ordered list of entries, each with a path and arbitrary
// attached state, and a cursor pointing at the current entry. Navigating
// pushes a new entry (discarding any forward entries) or replaces the
// current one. Back and Forward move the cursor without touching entries.
//
// # Basic Usage
//
//	h := navigation.NewHistory("/")
//	h.Navigate("/", navigation.NavigateOptions{State: "first"})
//	h.Navigate("/", navigation.NavigateOptions{State: "second"})
//
//	h.Back()
//	h.Location().State // "first"
//
// # Listeners
//
// Listen registers a callback invoked with the new location after every
// change (navigate, back, forward). It returns a function that removes the
// listener.
package navigation
