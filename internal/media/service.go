// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package media

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/savannatrails/safari-go/internal/util"
)

// MaxUploadSize is the per-file upload limit in bytes.
const MaxUploadSize = 10 << 20 // 10 MB

// PublicPrefix is the URL prefix under which uploads are served.
const PublicPrefix = "/uploads"

// Service orchestrates image uploads: collision-resistant naming,
// processing, variant generation and public URL construction.
type Service struct {
	processor *Processor
}

// NewService creates an upload service storing files under uploadsDir.
func NewService(uploadsDir string) *Service {
	return &Service{processor: NewProcessor(uploadsDir)}
}

// Processor exposes the underlying processor for maintenance tasks.
func (s *Service) Processor() *Processor {
	return s.processor
}

// SaveUpload processes a single uploaded file and returns its public URL.
func (s *Service) SaveUpload(header *multipart.FileHeader) (string, error) {
	if header.Size > MaxUploadSize {
		return "", fmt.Errorf("file %s exceeds the %d MB upload limit", header.Filename, MaxUploadSize>>20)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	id := uuid.New().String()
	filename := safeFilename(header.Filename)

	result, err := s.processor.ProcessImage(file, id, filename)
	if err != nil {
		return "", err
	}

	// Variant failures are not fatal; the original is already stored
	_, _ = s.processor.CreateAllVariants(result.FilePath, id, filename)

	return path.Join(PublicPrefix, "originals", id, filename), nil
}

// SaveUploads processes files strictly in submission order, so the
// resulting URL list order is deterministic across repeated uploads of
// the same batch. The first error aborts; URLs already stored are
// returned so the caller can keep them.
func (s *Service) SaveUploads(headers []*multipart.FileHeader) ([]string, error) {
	var urls []string
	for _, h := range headers {
		url, err := s.SaveUpload(h)
		if err != nil {
			return urls, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// DeleteUpload removes the stored original and variants behind a public
// upload URL. Unknown URLs are ignored.
func (s *Service) DeleteUpload(url string) {
	id := uuidFromURL(url)
	if id == "" {
		return
	}
	if err := s.processor.DeleteImageFiles(id); err != nil {
		slog.Warn("failed to delete upload files", "url", url, "error", err)
	}
}

// uuidFromURL extracts the upload ID from a /uploads/originals/<id>/<file> URL.
func uuidFromURL(url string) string {
	rest, ok := strings.CutPrefix(url, PublicPrefix+"/originals/")
	if !ok {
		return ""
	}
	id, _, ok := strings.Cut(rest, "/")
	if !ok {
		return ""
	}
	return id
}

// safeFilename normalizes an uploaded filename to a slug plus its
// original extension.
func safeFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	slug := util.Slugify(base)
	if slug == "" {
		slug = "image"
	}
	return slug + ext
}
