// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"mime"
	"strings"

	"github.com/pubky/pubky-app-specs/lib/uri"
)

const (
	minFileNameLen = 1
	maxFileNameLen = 255
	maxFileSrcLen  = 1024
	maxFileSize    = 10 << 20
)

// allowedContentTypes is the closed set of MIME essences a file
// document may declare.
var allowedContentTypes = map[string]bool{
	"application/javascript":            true,
	"application/json":                  true,
	"application/octet-stream":          true,
	"application/pdf":                   true,
	"application/x-www-form-urlencoded": true,
	"application/xml":                   true,
	"application/zip":                   true,
	"audio/mpeg":                        true,
	"audio/wav":                         true,
	"image/gif":                         true,
	"image/jpeg":                        true,
	"image/png":                         true,
	"image/svg+xml":                     true,
	"image/webp":                        true,
	"multipart/form-data":               true,
	"text/css":                          true,
	"text/html":                         true,
	"text/plain":                        true,
	"text/xml":                          true,
	"video/mp4":                         true,
	"video/mpeg":                        true,
}

// File describes an uploaded file at files/:id. The src field points
// at the blob document holding the bytes.
type File struct {
	Name        string `json:"name"`
	CreatedAt   int64  `json:"created_at"`
	Src         string `json:"src"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

func (File) ResourceKind() uri.Kind { return uri.KindFile }
func (File) isEntity()      {}

func (f File) Sanitize() Entity {
	f.Name = strings.TrimSpace(f.Name)
	f.Src = strings.TrimSpace(f.Src)
	f.ContentType = strings.TrimSpace(f.ContentType)
	return f
}

func (f File) Validate() error {
	if n := runeLen(f.Name); n < minFileNameLen || n > maxFileNameLen {
		return errf("name", "length", "%d runes, want %d..%d", n, minFileNameLen, maxFileNameLen)
	}
	if f.Src == "" {
		return errf("src", "required", "missing src URL")
	}
	if n := runeLen(f.Src); n > maxFileSrcLen {
		return errf("src", "length", "%d runes, max %d", n, maxFileSrcLen)
	}
	if !wellFormedURL(f.Src) {
		return errf("src", "format", "not a valid URL")
	}
	mediaType, _, err := mime.ParseMediaType(f.ContentType)
	if err != nil {
		return errf("content_type", "format", "%v", err)
	}
	if !allowedContentTypes[mediaType] {
		return errf("content_type", "enum", "%q is not an allowed content type", mediaType)
	}
	if f.Size <= 0 || f.Size > maxFileSize {
		return errf("size", "range", "%d bytes, want 1..%d", f.Size, maxFileSize)
	}
	return nil
}
