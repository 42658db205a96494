// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, multipart uploads,
// request tracing, access logging, metrics and error translation are handled
// in this package before requests are delegated to the service layer.
//
// Handlers return errors instead of writing failures themselves; [Handler.handle]
// hands every error to the single translation point, writeError, which maps
// it to a status through errorStatusTable and writes a {"message": ...} body.
package http
