// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Supported MIME types for uploads.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
)

// IsSupportedMimeType checks if a MIME type can be uploaded.
func IsSupportedMimeType(mimeType string) bool {
	switch mimeType {
	case MimeTypeJPEG, MimeTypePNG, MimeTypeGIF, MimeTypeWebP:
		return true
	default:
		return false
	}
}

// Image variant names.
const (
	VariantThumbnail = "thumbnail"
	VariantCard      = "card"
	VariantHero      = "hero"
)

// ImageVariantConfig describes how to derive one variant from an original.
type ImageVariantConfig struct {
	Width   int
	Height  int
	Quality int
	Crop    bool
}

// ImageVariants are the variants generated for every uploaded image.
var ImageVariants = map[string]ImageVariantConfig{
	VariantThumbnail: {Width: 300, Height: 200, Quality: 80, Crop: true},
	VariantCard:      {Width: 800, Height: 600, Quality: 85, Crop: true},
	VariantHero:      {Width: 1920, Height: 1080, Quality: 85, Crop: false},
}
