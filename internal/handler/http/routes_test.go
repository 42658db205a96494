// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-contacts-keeper/internal/service"
	"github.com/MKhiriev/go-contacts-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoutesHandler(t *testing.T) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{
		AuthService:    authenticatedAs(testUser()),
		UserService:    &mockUserService{},
		ContactService: &mockContactService{},
		AppInfoService: &mockAppInfoService{},
	})
}

// protectedRoutes are answered by auth before any handler runs.
var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/api/users/current"},
	{http.MethodGet, "/api/users/logout"},
	{http.MethodPatch, "/api/users"},
	{http.MethodPatch, "/api/users/avatars"},
	{http.MethodGet, "/api/contacts"},
	{http.MethodPost, "/api/contacts"},
	{http.MethodGet, "/api/contacts/" + testContactID},
	{http.MethodPut, "/api/contacts/" + testContactID},
	{http.MethodDelete, "/api/contacts/" + testContactID},
	{http.MethodPatch, "/api/contacts/" + testContactID + "/favorite"},
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newRoutesHandler(t).Init()

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, router, tc.method, tc.path, "", nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Not authorized"}`, rec.Body.String())
		})
	}
}

func TestInit_UnknownRoutes_Return404JSON(t *testing.T) {
	router := newRoutesHandler(t).Init()

	for _, path := range []string{"/api/nonexistent", "/api/users/unknown", "/api/contacts/a/b/c", "/"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, router, http.MethodGet, path, "", nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"message":"Not found"}`, rec.Body.String())
		})
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newRoutesHandler(t).Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/api/users/register"},
		{http.MethodPost, "/api/users/current"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, router, tc.method, tc.path, "", nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"message":"Not found"}`, rec.Body.String())
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newRoutesHandler(t).Init()

	rec := serve(t, router, http.MethodGet, "/api/version", "", nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	rec = serve(t, router, http.MethodGet, "/api/version", "", map[string]string{traceIDHeader: "given"})
	assert.Equal(t, "given", rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	router := newRoutesHandler(t).Init()

	rec := serve(t, router, http.MethodOptions, "/api/contacts", "", map[string]string{
		"Origin":                         "http://localhost:5173",
		"Access-Control-Request-Method":  http.MethodPost,
		"Access-Control-Request-Headers": "Authorization, Content-Type",
	})

	assert.Less(t, rec.Code, http.StatusMultipleChoices)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_ServesAvatars(t *testing.T) {
	h := newRoutesHandler(t)
	dir := filepath.Join(h.publicDir, store.AvatarsDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, testUserID+".png"), []byte("png"), 0o644))

	router := h.Init()

	rec := serve(t, router, http.MethodGet, "/avatars/"+testUserID+".png", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png", rec.Body.String())

	rec = serve(t, router, http.MethodGet, "/avatars/missing.png", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_ExposesMetrics(t *testing.T) {
	router := newRoutesHandler(t).Init()

	serve(t, router, http.MethodGet, "/api/version", "", nil)
	rec := serve(t, router, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/version"`)
}

func TestInit_RecoversPanics(t *testing.T) {
	router := newTestHandler(t, &service.Services{AppInfoService: nil}).Init()

	rec := serve(t, router, http.MethodGet, "/api/version", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
