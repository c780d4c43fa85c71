// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	refresh   key.Binding
	play      key.Binding
	remind    key.Binding
	copy      key.Binding
	copyID    key.Binding
	donate    key.Binding
	subscribe key.Binding
	profile   key.Binding
	admin     key.Binding
	info      key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	upload    key.Binding
	logout    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	refresh:   key.NewBinding(key.WithKeys("s")),
	play:      key.NewBinding(key.WithKeys("p")),
	remind:    key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyID:    key.NewBinding(key.WithKeys("u")),
	donate:    key.NewBinding(key.WithKeys("g")),
	subscribe: key.NewBinding(key.WithKeys("m")),
	profile:   key.NewBinding(key.WithKeys("i")),
	admin:     key.NewBinding(key.WithKeys("a")),
	info:      key.NewBinding(key.WithKeys("v")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	upload:    key.NewBinding(key.WithKeys("u")),
	logout:    key.NewBinding(key.WithKeys("o")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
