// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the version, date and commit injected into the server
// binary with -ldflags.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo wraps the linker-injected build variables.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// VersionResponse renders the /api/version body. A non-empty configured
// version replaces the build version; date and commit always come from the
// build.
func (a AppBuildInfo) VersionResponse(configured string) VersionResponse {
	version := configured
	if version == "" {
		version = a.version
	}

	return VersionResponse{
		Version: version,
		Date:    a.date,
		Commit:  a.commit,
	}
}
