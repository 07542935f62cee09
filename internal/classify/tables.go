// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "github.com/pdiddy/blob-extract/pkg/types"

// extensionByMIME maps content-type labels to file extensions.
// Read-only after package init.
var extensionByMIME = map[string]string{
	// Images
	"image/png":                 "png",
	"image/jpeg":                "jpeg",
	"image/bmp":                 "bmp",
	"image/svg+xml":             "svg",
	"image/vnd.adobe.photoshop": "psd",

	// Videos
	"video/mp4":        "mp4",
	"video/x-msvideo":  "avi",
	"video/x-matroska": "mkv",

	// Audio
	"audio/mpeg":      "mp3",
	"audio/wav":       "wav",
	"audio/x-wav":     "wav",
	"audio/ogg":       "ogg",
	"application/ogg": "ogg",
	"audio/aac":       "aac",
	"audio/flac":      "flac",

	// Documents
	"application/pdf":    "pdf",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   "docx",
	"application/vnd.ms-excel":                                                  "xls",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "xlsx",
	"application/vnd.ms-powerpoint":                                             "ppt",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
	"text/plain": "txt",

	// Archives
	"application/zip":              "zip",
	"application/vnd.rar":          "rar",
	"application/x-rar-compressed": "rar",
	"application/x-7z-compressed":  "7z",
	"application/gzip":             "gz",
	"application/x-gzip":           "gz",
	"application/x-tar":            "tar",

	// Executables
	"application/x-msdownload":                      "exe",
	"application/vnd.microsoft.portable-executable": "exe",
	"application/x-ms-installer":                    "msi",
	"application/x-executable":                      "elf",
	"application/x-elf":                             "elf",

	// Code and markup
	"text/html":              "html",
	"application/json":       "json",
	"text/x-python":          "py",
	"application/javascript": "js",
	"text/javascript":        "js",
	"application/xml":        "xml",
	"text/xml":               "xml",
	"application/x-yaml":     "yaml",
	"text/yaml":              "yaml",

	// eBooks
	"application/epub+zip":           "epub",
	"application/x-mobipocket-ebook": "mobi",

	// Design
	"application/postscript": "ai",
}

// categoryByExtension assigns every extension above to one category.
// "ai" has no group of its own and lands in unknown.
var categoryByExtension = func() map[string]types.Category {
	groups := map[types.Category][]string{
		types.CategoryImages:      {"png", "jpeg", "bmp", "svg", "psd"},
		types.CategoryVideos:      {"mp4", "avi", "mkv"},
		types.CategoryDocuments:   {"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "txt"},
		types.CategoryArchives:    {"zip", "rar", "7z", "gz", "tar"},
		types.CategoryAudio:       {"mp3", "wav", "ogg", "aac", "flac"},
		types.CategoryExecutables: {"exe", "msi", "elf"},
		types.CategoryCode:        {"html", "json", "py", "js", "xml", "yaml"},
		types.CategoryEbooks:      {"epub", "mobi"},
		types.CategoryUnknown:     {"ai"},
	}
	m := make(map[string]types.Category)
	for category, exts := range groups {
		for _, ext := range exts {
			if prev, dup := m[ext]; dup {
				panic("classify: extension " + ext + " in both " + string(prev) + " and " + string(category))
			}
			m[ext] = category
		}
	}
	return m
}()
