// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPHandler is returned when the handler set carries no HTTP router.
var errNoHTTPHandler = errors.New("no http handler to serve")
