// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package media

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testImageBytes(t *testing.T, format string, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	default:
		err = jpeg.Encode(&buf, img, nil)
	}
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"jpeg", testImageBytes(t, "jpeg", 4, 4), "jpeg"},
		{"png", testImageBytes(t, "png", 4, 4), "png"},
		{"gif header", []byte("GIF89a\x01\x00\x01\x00"), "gif"},
		{"plain text", []byte("not an image at all"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFormat(tt.data); got != tt.want {
				t.Errorf("detectFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProcessImageSavesOriginal(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)

	data := testImageBytes(t, "jpeg", 32, 24)
	result, err := p.ProcessImage(bytes.NewReader(data), "test-uuid", "photo.jpg")
	if err != nil {
		t.Fatalf("ProcessImage() error = %v", err)
	}

	if result.Width != 32 || result.Height != 24 {
		t.Errorf("dimensions = %dx%d, want 32x24", result.Width, result.Height)
	}
	if result.MimeType != "image/jpeg" {
		t.Errorf("MimeType = %q", result.MimeType)
	}
	if _, err := os.Stat(filepath.Join(dir, "originals", "test-uuid", "photo.jpg")); err != nil {
		t.Errorf("original not saved: %v", err)
	}
}

func TestProcessImageRejectsNonImage(t *testing.T) {
	p := NewProcessor(t.TempDir())
	if _, err := p.ProcessImage(strings.NewReader("just text"), "id", "file.txt"); err == nil {
		t.Error("ProcessImage() accepted non-image data")
	}
}

func TestSaveImageFileRejectsTraversal(t *testing.T) {
	p := NewProcessor(t.TempDir())

	tests := []struct {
		name     string
		subDir   string
		filename string
	}{
		{"dotdot subdir", "../outside", "a.jpg"},
		{"absolute subdir", "/etc", "a.jpg"},
		{"empty filename", "originals/x", ""},
		{"dot filename", "originals/x", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.saveImageFile(tt.subDir, tt.filename, []byte("data")); err == nil {
				t.Error("saveImageFile() accepted unsafe path")
			}
		})
	}
}

func TestDeleteImageFiles(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)

	data := testImageBytes(t, "jpeg", 8, 8)
	if _, err := p.ProcessImage(bytes.NewReader(data), "gone", "photo.jpg"); err != nil {
		t.Fatal(err)
	}

	if err := p.DeleteImageFiles("gone"); err != nil {
		t.Fatalf("DeleteImageFiles() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "originals", "gone")); !os.IsNotExist(err) {
		t.Error("originals directory still exists")
	}
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Lion Pride.JPG", "lion-pride.jpg"},
		{"../../etc/passwd", "passwd"},
		{"???.png", "image.png"},
		{"sunset_over_mara.jpeg", "sunsetovermara.jpeg"},
	}

	for _, tt := range tests {
		if got := safeFilename(tt.input); got != tt.want {
			t.Errorf("safeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
