/*
Package tui implements the terminal user interface for bindsync.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Maintains all application state
  - Update: Processes messages and returns commands
  - View: Renders the current state to the terminal

# Key Components

  - model.go: Core state, the Model struct, and message handling
  - keys.go: Keyboard input handling and keybind routing
  - actions.go: Business logic and side effects (file I/O, clipboard, core operations)
  - render.go: View rendering for the three-pane layout and modals
  - highlight.go: Syntax highlighting for the result pane

# Layout

Three panes: source and target side by side on top, the result below, with
a status bar on the last line. Tab cycles focus; the focused pane scrolls
and is the one validate operates on. Modals (path prompt, history browser,
help, confirmations) replace the main view while open.
*/
package tui
