// Package ui contains the Bubble Tea program that drives a launcher session.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Printable keys are appended to the accumulated input one rune at a time
//     through dispatch.Dispatcher.OnChange. The dispatcher resolves the
//     candidate from the root, runs any leaf action, and returns the input the
//     session keeps; the model commits that input to the state.SessionStore.
//   - Backspace and ctrl+u edit the input directly and never run actions.
//     Enter retries the action under the current input, which only matters
//     after a failed launch left the input on a leaf.
//   - A Terminate outcome ends the program with tea.Quit.
//
// Rendering is a pure function of the session store: the header shows the
// names along the input path, the body lists keymap.ViewChildren rows, and
// the bottom bar carries the status line and the input field.
package ui
