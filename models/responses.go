// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppInfo describes the running Remote Store build.
type AppInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON response.
// Fields is set only for validation failures and maps field name to message.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UploadURLRequest asks for a presigned gallery upload.
type UploadURLRequest struct {
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required"`
}

// UploadURL is a presigned PUT target for a media object.
type UploadURL struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	PublicURL string `json:"public_url,omitempty"`
	ExpiresIn int64  `json:"expires_in"`
}

// ChangeOp names the mutation carried by a [ChangeEvent].
type ChangeOp string

const (
	OpCreate ChangeOp = "create"
	OpUpdate ChangeOp = "update"
	OpDelete ChangeOp = "delete"
)

// ChangeEvent is pushed to listeners of the change feed after a successful
// mutation. It is a hint only: receivers refresh, they do not apply it.
type ChangeEvent struct {
	Collection Collection `json:"collection"`
	Op         ChangeOp   `json:"op"`
	ID         string     `json:"id,omitempty"`
}
