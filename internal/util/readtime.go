// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"regexp"
	"strings"
)

// readTimeWPM is the assumed reading speed in words per minute.
const readTimeWPM = 200

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// EstimateReadTime returns the estimated reading time in minutes for
// a piece of HTML or plain-text content. The result is always at least 1.
func EstimateReadTime(content string) int {
	text := htmlTagRegex.ReplaceAllString(content, " ")
	words := len(strings.Fields(text))
	minutes := (words + readTimeWPM - 1) / readTimeWPM
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
