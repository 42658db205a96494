// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
)

const notFoundMessage = "Not found"

// notFound answers unknown paths with the JSON message body used by every
// other error response.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, notFoundMessage, http.StatusNotFound)
}

// methodNotAllowed answers a known path requested with an unregistered
// method. Like unknown paths it responds 404, so callers cannot discover which
// methods a route supports.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, notFoundMessage, http.StatusNotFound)
}
