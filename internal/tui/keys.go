package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	logout    key.Binding
	addFile   key.Binding
	clear     key.Binding
	convert   key.Binding
	filter    key.Binding
	originals key.Binding
	results   key.Binding
	copy      key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	logout:    key.NewBinding(key.WithKeys("l")),
	addFile:   key.NewBinding(key.WithKeys("a")),
	clear:     key.NewBinding(key.WithKeys("x")),
	convert:   key.NewBinding(key.WithKeys("u")),
	filter:    key.NewBinding(key.WithKeys("/")),
	originals: key.NewBinding(key.WithKeys("o")),
	results:   key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	info:      key.NewBinding(key.WithKeys("i")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
