// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadedFile describes a file accepted by the upload middleware and
// parked in the private temp directory until the handler consumes it.
type UploadedFile struct {
	// TempPath is the absolute path of the temporary copy.
	TempPath string

	// OriginalFilename is the base name the client sent.
	OriginalFilename string
}

// Email is a single transactional message.
type Email struct {
	To      string
	Subject string
	HTML    string
}
