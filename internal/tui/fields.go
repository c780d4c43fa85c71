// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-parish/models"
)

const timeLayout = "2006-01-02 15:04"

// fieldSpec binds one editable record field to a form input.
type fieldSpec struct {
	label string
	get   func(models.Record) string
	set   func(models.Record, string) error
}

func textField[T models.Record](label string, ptr func(T) *string) fieldSpec {
	return fieldSpec{
		label: label,
		get:   func(r models.Record) string { return *ptr(r.(T)) },
		set: func(r models.Record, v string) error {
			*ptr(r.(T)) = strings.TrimSpace(v)
			return nil
		},
	}
}

func timeField[T models.Record](label string, ptr func(T) *time.Time) fieldSpec {
	return fieldSpec{
		label: label,
		get: func(r models.Record) string {
			t := *ptr(r.(T))
			if t.IsZero() {
				return ""
			}
			return t.Local().Format(timeLayout)
		},
		set: func(r models.Record, v string) error {
			t, err := parseTime(v)
			if err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}
			*ptr(r.(T)) = t
			return nil
		},
	}
}

func optionalTimeField[T models.Record](label string, ptr func(T) **time.Time) fieldSpec {
	return fieldSpec{
		label: label,
		get:   func(r models.Record) string { return formatOptional(*ptr(r.(T))) },
		set: func(r models.Record, v string) error {
			if strings.TrimSpace(v) == "" {
				*ptr(r.(T)) = nil
				return nil
			}
			t, err := parseTime(v)
			if err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}
			*ptr(r.(T)) = &t
			return nil
		},
	}
}

func amountField[T models.Record](label string, ptr func(T) *int64) fieldSpec {
	return fieldSpec{
		label: label,
		get: func(r models.Record) string {
			v := *ptr(r.(T))
			if v == 0 {
				return ""
			}
			return strconv.FormatInt(v, 10)
		},
		set: func(r models.Record, v string) error {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return fmt.Errorf("%s: not a whole number", label)
			}
			*ptr(r.(T)) = n
			return nil
		},
	}
}

func parseTime(v string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, strings.TrimSpace(v), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("use the format %s", timeLayout)
	}
	return t, nil
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(timeLayout)
}

var recordFields = map[models.Collection][]fieldSpec{
	models.Events: {
		textField("Title", func(e *models.Event) *string { return &e.Title }),
		timeField("Starts at", func(e *models.Event) *time.Time { return &e.StartsAt }),
		optionalTimeField("Ends at", func(e *models.Event) **time.Time { return &e.EndsAt }),
		textField("Location", func(e *models.Event) *string { return &e.Location }),
		textField("Description", func(e *models.Event) *string { return &e.Description }),
		textField("Image URL", func(e *models.Event) *string { return &e.ImageURL }),
	},
	models.Sermons: {
		textField("Title", func(s *models.Sermon) *string { return &s.Title }),
		textField("Preacher", func(s *models.Sermon) *string { return &s.Preacher }),
		textField("Scripture", func(s *models.Sermon) *string { return &s.Scripture }),
		optionalTimeField("Preached on", func(s *models.Sermon) **time.Time { return &s.PreachedOn }),
		textField("Media URL", func(s *models.Sermon) *string { return &s.MediaURL }),
		textField("Media kind (video/audio)", func(s *models.Sermon) *string { return (*string)(&s.MediaKind) }),
	},
	models.Pastors: {
		textField("Name", func(p *models.Pastor) *string { return &p.Name }),
		textField("Role", func(p *models.Pastor) *string { return &p.Role }),
		textField("Bio", func(p *models.Pastor) *string { return &p.Bio }),
		textField("Photo URL", func(p *models.Pastor) *string { return &p.PhotoURL }),
	},
	models.Gallery: {
		textField("Title", func(g *models.GalleryImage) *string { return &g.Title }),
		textField("Image URL", func(g *models.GalleryImage) *string { return &g.ImageURL }),
		textField("Caption", func(g *models.GalleryImage) *string { return &g.Caption }),
	},
	models.Subscribers: {
		textField("Email", func(s *models.Subscriber) *string { return &s.Email }),
		textField("Name", func(s *models.Subscriber) *string { return &s.Name }),
	},
	models.Donations: {
		amountField("Amount (minor units)", func(d *models.Donation) *int64 { return &d.Amount }),
		textField("Currency", func(d *models.Donation) *string { return &d.Currency }),
		textField("Purpose", func(d *models.Donation) *string { return &d.Purpose }),
		textField("Donor name", func(d *models.Donation) *string { return &d.DonorName }),
		textField("Reference", func(d *models.Donation) *string { return &d.Reference }),
	},
	models.Notifications: {
		textField("Title", func(n *models.Notification) *string { return &n.Title }),
		textField("Message", func(n *models.Notification) *string { return &n.Message }),
		textField("Level (info/warning/urgent)", func(n *models.Notification) *string { return (*string)(&n.Level) }),
		optionalTimeField("Expires at", func(n *models.Notification) **time.Time { return &n.ExpiresAt }),
	},
}

// buildRecord creates a record of c from form values. id is empty for new
// records.
func buildRecord(c models.Collection, id string, values []string) (models.Record, error) {
	rec, err := models.NewRecord(c)
	if err != nil {
		return nil, err
	}
	specs := recordFields[c]
	for i, field := range specs {
		if i >= len(values) {
			break
		}
		if err = field.set(rec, values[i]); err != nil {
			return nil, err
		}
	}
	models.RecordBase(rec).ID = id
	return rec, nil
}

func recordValues(rec models.Record) []string {
	specs := recordFields[rec.Collection()]
	out := make([]string, len(specs))
	for i, field := range specs {
		out[i] = field.get(rec)
	}
	return out
}

func recordLabels(c models.Collection) []string {
	specs := recordFields[c]
	out := make([]string, len(specs))
	for i, field := range specs {
		out[i] = field.label
	}
	return out
}

// recordTitle is the one-line summary shown in lists.
func recordTitle(rec models.Record) string {
	switch r := rec.(type) {
	case *models.Event:
		return formatTime(r.StartsAt) + "  " + r.Title
	case *models.Sermon:
		return r.Title + " - " + valueOrDash(r.Preacher) + fmt.Sprintf(" (%d views)", r.Views)
	case *models.Pastor:
		return r.Name + " - " + valueOrDash(r.Role)
	case *models.GalleryImage:
		return valueOrDash(r.Title)
	case *models.Subscriber:
		return r.Email
	case *models.Donation:
		return formatAmount(r.Amount, r.Currency) + "  " + r.Purpose
	case *models.Notification:
		return "[" + string(r.Level) + "] " + r.Title
	default:
		return rec.RecordID()
	}
}

func recordDetail(rec models.Record) string {
	var b strings.Builder
	for _, field := range recordFields[rec.Collection()] {
		b.WriteString(field.label)
		b.WriteString(": ")
		b.WriteString(valueOrDash(field.get(rec)))
		b.WriteString("\n")
	}

	switch r := rec.(type) {
	case *models.Sermon:
		fmt.Fprintf(&b, "Views: %d\n", r.Views)
	case *models.Donation:
		b.WriteString("Status: " + valueOrDash(r.Status) + "\n")
	}

	base := models.RecordBase(rec)
	b.WriteString("\nID: " + valueOrDash(base.ID) + "\n")
	b.WriteString("Updated: " + formatTimePtr(base.UpdatedAt))
	return b.String()
}

// mediaURL is what the copy key puts on the clipboard for rec.
func mediaURL(rec models.Record) string {
	switch r := rec.(type) {
	case *models.Sermon:
		return r.MediaURL
	case *models.GalleryImage:
		return r.ImageURL
	case *models.Event:
		return r.ImageURL
	case *models.Pastor:
		return r.PhotoURL
	default:
		return ""
	}
}

func collectionTitle(c models.Collection) string {
	switch c {
	case models.Gallery:
		return "Gallery"
	default:
		s := c.String()
		return strings.ToUpper(s[:1]) + s[1:]
	}
}
