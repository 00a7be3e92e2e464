// Package keybinds provides customizable keyboard binding management for
// the TUI. Bindings are grouped by context (normal view, modals, text
// prompts); a key resolves in the active context first and falls back to
// the global context. Users override defaults via keybinds.json in the
// config directory.
package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal  Context = "global"  // Available everywhere
	ContextNormal  Context = "normal"  // Main three-pane view
	ContextPrompt  Context = "prompt"  // Path/text prompt input
	ContextHistory Context = "history" // History browser modal
	ContextHelp    Context = "help"    // Help viewer
	ContextConfirm Context = "confirm" // Confirmation dialogs
)

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionQuitForce Action = "quit_force"

	// Navigation
	ActionNavigateUp   Action = "navigate_up"
	ActionNavigateDown Action = "navigate_down"
	ActionPageUp       Action = "page_up"
	ActionPageDown     Action = "page_down"
	ActionGoToTop      Action = "go_to_top"
	ActionGoToBottom   Action = "go_to_bottom"
	ActionSwitchFocus  Action = "switch_focus"

	// Document I/O
	ActionOpenSource  Action = "open_source"  // Prompt for a source file path
	ActionOpenTarget  Action = "open_target"  // Prompt for a target file path
	ActionPasteSource Action = "paste_source" // Paste clipboard into source
	ActionPasteTarget Action = "paste_target" // Paste clipboard into target
	ActionCopyResult  Action = "copy_result"  // Copy result to clipboard
	ActionSaveResult  Action = "save_result"  // Prompt for a save path
	ActionClearAll    Action = "clear_all"    // Clear all three panes

	// Core operations
	ActionExtract  Action = "extract"  // Extract controls from source
	ActionMerge    Action = "merge"    // Merge controls into target
	ActionValidate Action = "validate" // Validate + pretty-print focused pane

	// Toggles
	ActionTogglePretty  Action = "toggle_pretty"  // Pretty vs minified result
	ActionToggleLenient Action = "toggle_lenient" // Lenient parsing opt-in
	ActionToggleTheme   Action = "toggle_theme"   // Dark vs light theme

	// Modal launchers
	ActionOpenHistory Action = "open_history"
	ActionOpenHelp    Action = "open_help"

	// Modal actions
	ActionCloseModal Action = "close_modal"
	ActionConfirm    Action = "confirm"
	ActionCancel     Action = "cancel"

	// History modal
	ActionHistoryLoad  Action = "history_load"  // Load entry result into result pane
	ActionHistoryClear Action = "history_clear" // Clear history (with confirm)

	// Text prompt
	ActionTextSubmit    Action = "text_submit"
	ActionTextCancel    Action = "text_cancel"
	ActionTextBackspace Action = "text_backspace"
	ActionTextPaste     Action = "text_paste"
)
