package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalBindings(r)
	registerPromptBindings(r)
	registerHistoryBindings(r)
	registerHelpBindings(r)
	registerConfirmBindings(r)

	return r
}

func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

func registerNormalBindings(r *Registry) {
	r.Register(ContextNormal, "q", ActionQuit)

	// Focus and scrolling
	r.Register(ContextNormal, "tab", ActionSwitchFocus)
	r.RegisterMultiple(ContextNormal, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextNormal, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextNormal, "pgup", ActionPageUp)
	r.Register(ContextNormal, "pgdown", ActionPageDown)
	r.Register(ContextNormal, "home", ActionGoToTop)
	r.Register(ContextNormal, "end", ActionGoToBottom)

	// Document I/O
	r.Register(ContextNormal, "o", ActionOpenSource)
	r.Register(ContextNormal, "O", ActionOpenTarget)
	r.Register(ContextNormal, "p", ActionPasteSource)
	r.Register(ContextNormal, "P", ActionPasteTarget)
	r.Register(ContextNormal, "c", ActionCopyResult)
	r.Register(ContextNormal, "s", ActionSaveResult)
	r.Register(ContextNormal, "C", ActionClearAll)

	// Core operations
	r.Register(ContextNormal, "e", ActionExtract)
	r.Register(ContextNormal, "m", ActionMerge)
	r.Register(ContextNormal, "v", ActionValidate)

	// Toggles
	r.Register(ContextNormal, "f", ActionTogglePretty)
	r.Register(ContextNormal, "L", ActionToggleLenient)
	r.Register(ContextNormal, "t", ActionToggleTheme)

	// Modals
	r.Register(ContextNormal, "H", ActionOpenHistory)
	r.Register(ContextNormal, "?", ActionOpenHelp)
}

func registerPromptBindings(r *Registry) {
	r.Register(ContextPrompt, "enter", ActionTextSubmit)
	r.Register(ContextPrompt, "esc", ActionTextCancel)
	r.Register(ContextPrompt, "backspace", ActionTextBackspace)
	r.RegisterMultiple(ContextPrompt, []string{"ctrl+v", "shift+insert"}, ActionTextPaste)
}

func registerHistoryBindings(r *Registry) {
	r.RegisterMultiple(ContextHistory, []string{"esc", "q", "H"}, ActionCloseModal)
	r.RegisterMultiple(ContextHistory, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHistory, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHistory, "enter", ActionHistoryLoad)
	r.Register(ContextHistory, "C", ActionHistoryClear)
}

func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "q", "?"}, ActionCloseModal)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextHelp, "pgup", ActionPageUp)
	r.Register(ContextHelp, "pgdown", ActionPageDown)
}

func registerConfirmBindings(r *Registry) {
	r.RegisterMultiple(ContextConfirm, []string{"y", "Y", "enter"}, ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "N", "esc", "q"}, ActionCancel)
}
