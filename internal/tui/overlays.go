// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-parish/models"
)

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\nenter / esc: close"
	return overlayBoxStyle.Render(content)
}

type confirmModel struct {
	message    string
	collection models.Collection
	id         string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.message + "\"?\n\n"
	content += "y: yes    n: no"
	return overlayBoxStyle.Render(content)
}

func renderBuildInfoWindow(client, server models.AppInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-parish\n")
	b.WriteString("Client version: ")
	b.WriteString(valueOrNA(client.Version))
	b.WriteString("\n")
	b.WriteString("Client build date: ")
	b.WriteString(valueOrNA(client.BuildDate))
	b.WriteString("\n")
	b.WriteString("Client commit: ")
	b.WriteString(valueOrNA(client.BuildCommit))
	b.WriteString("\n\n")
	b.WriteString("Server version: ")
	b.WriteString(valueOrNA(server.Version))
	b.WriteString("\n")
	b.WriteString("Server commit: ")
	b.WriteString(valueOrNA(server.BuildCommit))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
