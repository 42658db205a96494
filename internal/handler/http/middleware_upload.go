// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
	"github.com/MKhiriev/go-contacts-keeper/models"
)

// upload streams the multipart body part named field into the private temp
// directory and exposes it to next as a [models.UploadedFile] under
// [utils.UploadedFileCtxKey].
//
// Exactly one file part is accepted. Parts with other names are skipped.
// Whatever next does, the temp file is removed once it returns; a failed
// removal is only logged.
func (h *Handler) upload(field string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			file, err := h.receiveFile(r, field)
			if file.TempPath != "" {
				defer removeTempFile(log, file.TempPath)
			}
			if err != nil {
				h.writeError(w, r, err)
				return
			}

			log.Debug().Str("temp_path", file.TempPath).Msg("file uploaded")

			ctx := context.WithValue(r.Context(), utils.UploadedFileCtxKey, file)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// receiveFile reads the whole multipart stream. The returned TempPath is set
// as soon as a file is written, also when an error follows, so the caller can
// clean it up.
func (h *Handler) receiveFile(r *http.Request, field string) (models.UploadedFile, error) {
	var file models.UploadedFile

	reader, err := r.MultipartReader()
	if err != nil {
		return file, ErrMissingFile
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return file, fmt.Errorf("error reading multipart body: %w", err)
		}

		if part.FormName() != field || part.FileName() == "" {
			part.Close()
			continue
		}

		if file.TempPath != "" {
			part.Close()
			return file, ErrTooManyFiles
		}

		file, err = h.saveTempFile(part, filepath.Base(part.FileName()))
		part.Close()
		if err != nil {
			return file, err
		}
	}

	if file.TempPath == "" {
		return file, ErrMissingFile
	}

	return file, nil
}

func (h *Handler) saveTempFile(src io.Reader, filename string) (models.UploadedFile, error) {
	if err := os.MkdirAll(h.tempDir, 0o750); err != nil {
		return models.UploadedFile{}, fmt.Errorf("error creating temp dir: %w", err)
	}

	tempPath, err := filepath.Abs(filepath.Join(h.tempDir, filename))
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("error resolving temp path: %w", err)
	}

	dst, err := os.Create(tempPath)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("error creating temp file: %w", err)
	}
	defer dst.Close()

	file := models.UploadedFile{TempPath: tempPath, OriginalFilename: filename}
	if _, err = io.Copy(dst, src); err != nil {
		return file, fmt.Errorf("error writing temp file: %w", err)
	}

	return file, nil
}

func removeTempFile(log *logger.Logger, path string) {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("temp_path", path).Msg("error removing temp file")
	}
}
