package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Back   key.Binding
	Logout key.Binding

	// Navigation
	Dashboard  key.Binding
	NewReceipt key.Binding
	History    key.Binding
	Settings   key.Binding

	// Actions
	Select key.Binding
	Delete key.Binding
	Export key.Binding
	Search key.Binding

	// Movement
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:       key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Logout:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "logout")),
	Dashboard:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
	NewReceipt: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new receipt")),
	History:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "receipts")),
	Settings:   key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
	Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Delete:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	Export:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
}
