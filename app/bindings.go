package app

import "github.com/avern/tabline/core"

const (
	scopeTabs     = "tabs"
	scopeSwitcher = "switcher"
)

// DefaultBindings covers the demo's key surface. The switcher consumes
// its own keys; only its dismiss hint is advertised there.
func DefaultBindings() []core.KeyBinding {
	return []core.KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: "quit", Description: "quit", Scopes: []string{scopeTabs}},
		{Keys: []string{"right", "l"}, Action: "step-forward", Description: "next tab", Scopes: []string{scopeTabs}},
		{Keys: []string{"left", "h"}, Action: "step-backward", Description: "prev tab", Scopes: []string{scopeTabs}},
		{Keys: []string{"n"}, Action: "add-tab", Description: "add tab", Scopes: []string{scopeTabs}},
		{Keys: []string{"x"}, Action: "close-tab", Description: "close tab", Scopes: []string{scopeTabs}},
		{Keys: []string{"/"}, Action: "open-switcher", Description: "switch", Scopes: []string{scopeTabs}},
		{Keys: []string{"a"}, Action: "toggle-axis", Description: "layout", Scopes: []string{scopeTabs}},
		{Keys: []string{"esc"}, Action: "dismiss", Description: "dismiss", Scopes: []string{scopeSwitcher}},
	}
}
