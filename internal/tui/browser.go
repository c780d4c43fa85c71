// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-parish/models"
)

// browser shows the collections of one sync hook as tabs with a selectable
// list. It keeps its own copy of the records so that confirmed mutations can
// be spliced in before the next snapshot arrives.
type browser struct {
	collections []models.Collection
	tab         int
	idx         int
	detail      bool

	records  map[models.Collection][]models.Record
	snapshot models.SyncSnapshot
}

func newBrowser(collections []models.Collection) browser {
	return browser{
		collections: collections,
		records:     make(map[models.Collection][]models.Record, len(collections)),
		snapshot:    models.SyncSnapshot{Loading: true},
	}
}

func (b *browser) collection() models.Collection {
	return b.collections[b.tab]
}

func (b *browser) items() []models.Record {
	return b.records[b.collection()]
}

func (b *browser) current() (models.Record, bool) {
	items := b.items()
	if b.idx < 0 || b.idx >= len(items) {
		return nil, false
	}
	return items[b.idx], true
}

func (b *browser) move(delta int) {
	b.idx += delta
	b.clamp()
}

func (b *browser) switchTab(delta int) {
	n := len(b.collections)
	b.tab = (b.tab + delta + n) % n
	b.idx = 0
	b.detail = false
}

func (b *browser) clamp() {
	if n := len(b.items()); b.idx >= n {
		b.idx = n - 1
	}
	if b.idx < 0 {
		b.idx = 0
	}
}

// apply replaces the local copy with the collections of snap. Collections
// the snapshot does not hold yet keep their local records, so a failed first
// cycle does not blank the screen.
func (b *browser) apply(snap models.SyncSnapshot) {
	b.snapshot = snap
	for _, c := range b.collections {
		if snap.Has(c) {
			b.records[c] = snap.Records(c)
		}
	}
	b.clamp()
}

func (b *browser) upsert(rec models.Record) {
	c := rec.Collection()
	b.records[c] = models.Upsert(b.records[c], rec)
}

func (b *browser) remove(c models.Collection, id string) {
	b.records[c] = models.Remove(b.records[c], id)
	b.clamp()
}

func (b *browser) renderTabs() string {
	parts := make([]string, len(b.collections))
	for i, c := range b.collections {
		label := fmt.Sprintf("%s (%d)", collectionTitle(c), len(b.records[c]))
		if i == b.tab {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}
	return strings.Join(parts, "")
}

func (b *browser) renderSyncLine(spin string) string {
	snap := b.snapshot
	switch {
	case snap.Loading && snap.LastSyncedAt.IsZero():
		return spin + " Loading..."
	case snap.Loading:
		return spin + " Refreshing...  last update " + formatTime(snap.LastSyncedAt)
	case snap.Err != nil:
		return errorStyle.Render("Refresh failed, showing data from " + formatTime(snap.LastSyncedAt))
	default:
		return helpStyle.Render("Updated " + formatTime(snap.LastSyncedAt))
	}
}

// renderList draws the list of the active tab. mark decorates a row, e.g. with
// a reminder flag.
func (b *browser) renderList(mark func(models.Record) string) string {
	items := b.items()
	if len(items) == 0 {
		if !b.snapshot.Has(b.collection()) {
			return "Nothing loaded yet"
		}
		return "Nothing here yet"
	}

	var out strings.Builder
	for i, rec := range items {
		cursor := "  "
		line := fitText(recordTitle(rec), 70)
		if mark != nil {
			line += mark(rec)
		}
		if i == b.idx {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		out.WriteString(cursor)
		out.WriteString(line)
		out.WriteString("\n")
	}
	return strings.TrimRight(out.String(), "\n")
}
