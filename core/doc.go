// Package core owns the tab set controller and its contracts.
//
// Allowed here:
// - selection state and reconciliation policy over a resizable tab set
// - message contracts, key registry, switcher state machine
//
// Not allowed here:
// - concrete strip/rail/pager rendering (that lives in core/widgets)
// - persistence or configuration concerns
package core
