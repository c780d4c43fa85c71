// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-parish/models"
)

func newLoginForm() *formModel {
	f := newFormModel(formLogin, "ADMIN LOGIN", []string{"Login", "Password"}, nil)
	f.mask(1)
	return f
}

func newDonateForm() *formModel {
	return newFormModel(formDonate, "GIVE",
		[]string{"Amount (e.g. 25 or 12.50)", "Currency", "Purpose", "Your name (optional)"},
		[]string{"", "USD", "General fund", ""},
	)
}

func newSubscribeForm() *formModel {
	return newFormModel(formSubscribe, "NEWSLETTER", []string{"Email", "Name (optional)"}, nil)
}

func newProfileForm() *formModel {
	return newFormModel(formProfile, "YOUR PROFILE", []string{"Name (optional)", "Email (optional)"}, nil)
}

func newUploadForm() *formModel {
	return newFormModel(formUpload, "GALLERY UPLOAD",
		[]string{"File name", "Content type"},
		[]string{"", "image/jpeg"},
	)
}

// newRecordForm opens an editor for rec, or for a new record of c when rec is
// nil.
func newRecordForm(c models.Collection, rec models.Record) *formModel {
	noun := strings.TrimSuffix(strings.ToLower(collectionTitle(c)), "s")
	if c == models.Gallery {
		noun = "gallery image"
	}

	title := "NEW " + strings.ToUpper(noun)
	var values []string
	var id string
	if rec != nil {
		title = "EDIT " + strings.ToUpper(noun)
		values = recordValues(rec)
		id = rec.RecordID()
	}

	f := newFormModel(formRecord, title, recordLabels(c), values)
	f.collection = c
	f.editID = id
	return f
}
