// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_VersionResponse(t *testing.T) {
	build := NewAppBuildInfo("1.2.0", "2026-10-01", "abc123")

	assert.Equal(t, VersionResponse{Version: "1.2.0", Date: "2026-10-01", Commit: "abc123"}, build.VersionResponse(""))
	assert.Equal(t, VersionResponse{Version: "2.0.0-rc1", Date: "2026-10-01", Commit: "abc123"}, build.VersionResponse("2.0.0-rc1"))
	assert.Empty(t, AppBuildInfo{}.VersionResponse("").Version)
}
