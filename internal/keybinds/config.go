package keybinds

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config represents the user's keybinding configuration. Each section maps
// key -> action name and overrides the corresponding default binding.
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Normal  map[string]string `json:"normal,omitempty"`
	Prompt  map[string]string `json:"prompt,omitempty"`
	History map[string]string `json:"history,omitempty"`
	Help    map[string]string `json:"help,omitempty"`
	Confirm map[string]string `json:"confirm,omitempty"`
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings.
func ApplyConfig(registry *Registry, config *Config) {
	contextMappings := map[Context]map[string]string{
		ContextGlobal:  config.Global,
		ContextNormal:  config.Normal,
		ContextPrompt:  config.Prompt,
		ContextHistory: config.History,
		ContextHelp:    config.Help,
		ContextConfirm: config.Confirm,
	}

	for context, bindings := range contextMappings {
		for key, actionStr := range bindings {
			registry.Register(context, key, Action(actionStr))
		}
	}
}

// LoadOrDefault loads user config over the defaults if the file exists,
// otherwise returns the default registry unchanged.
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}
		ApplyConfig(registry, config)
	}
	// Missing config is fine - use defaults

	return registry, nil
}
