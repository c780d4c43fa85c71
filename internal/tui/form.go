// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-parish/models"
)

type formPurpose int

const (
	formLogin formPurpose = iota
	formDonate
	formSubscribe
	formProfile
	formRecord
	formUpload
)

// formModel is a vertical list of labelled text inputs. Enter on the last
// input submits; the root model decides what submitting means.
type formModel struct {
	purpose formPurpose
	title   string
	labels  []string
	inputs  []textinput.Model
	focus   int

	submitting bool
	err        string

	// set for formRecord
	collection models.Collection
	editID     string
}

func newFormModel(purpose formPurpose, title string, labels, values []string) *formModel {
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 48
		inputs[i].CharLimit = 5000
		if i < len(values) {
			inputs[i].SetValue(values[i])
		}
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return &formModel{purpose: purpose, title: title, labels: labels, inputs: inputs}
}

func (m *formModel) mask(i int) {
	m.inputs[i].EchoMode = textinput.EchoPassword
	m.inputs[i].EchoCharacter = '*'
}

func (m *formModel) values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = in.Value()
	}
	return out
}

func (m *formModel) value(i int) string {
	return strings.TrimSpace(m.inputs[i].Value())
}

// onLastInput reports whether enter should submit the form.
func (m *formModel) onLastInput() bool {
	return m.focus == len(m.inputs)-1
}

func (m *formModel) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	i = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *formModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.setFocus(m.focus + 1)
			return nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus(m.focus - 1)
			return nil
		case key.Matches(keyMsg, keys.enter):
			m.setFocus(m.focus + 1)
			return nil
		}
	}

	if len(m.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *formModel) View() string {
	var b strings.Builder
	for i, in := range m.inputs {
		label := m.labels[i]
		if i == m.focus {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	if m.submitting {
		b.WriteString("Sending...\n")
	}
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	return renderPage(m.title, b.String(), "tab/shift+tab: move   enter: next / submit   esc: cancel")
}
