package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	toggle key.Binding
	enter  key.Binding
	next   key.Binding
	back   key.Binding
	submit key.Binding
	info   key.Binding
	esc    key.Binding
	quit   key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up")),
	down:   key.NewBinding(key.WithKeys("down")),
	toggle: key.NewBinding(key.WithKeys(" ")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	next:   key.NewBinding(key.WithKeys("tab")),
	back:   key.NewBinding(key.WithKeys("shift+tab")),
	submit: key.NewBinding(key.WithKeys("ctrl+s")),
	info:   key.NewBinding(key.WithKeys("f1")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	quit:   key.NewBinding(key.WithKeys("ctrl+c")),
}
