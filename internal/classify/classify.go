// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps blob bytes to a content-type label, a file
// extension, and an output category. Classification looks at content
// only; names and metadata are never consulted.
package classify

import (
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/pdiddy/blob-extract/pkg/types"
)

// Sniffer returns a content-type label for a byte buffer.
type Sniffer interface {
	Sniff(data []byte) string
}

// SnifferFunc adapts a function to the Sniffer interface.
type SnifferFunc func(data []byte) string

// Sniff calls f(data).
func (f SnifferFunc) Sniff(data []byte) string { return f(data) }

// signatureSniffer detects content from magic numbers using mimetype.
type signatureSniffer struct{}

func (signatureSniffer) Sniff(data []byte) string {
	return mimetype.Detect(data).String()
}

// Classifier turns blob bytes into a ClassificationResult.
type Classifier struct {
	sniffer Sniffer
}

// New returns a Classifier backed by s. A nil s uses signature detection.
func New(s Sniffer) *Classifier {
	if s == nil {
		s = signatureSniffer{}
	}
	return &Classifier{sniffer: s}
}

// Default classifies with signature detection.
var Default = New(nil)

// Classify classifies data with the default classifier.
func Classify(data []byte) types.ClassificationResult {
	return Default.Classify(data)
}

// Classify sniffs data and resolves the label through the static tables.
// It never fails: unmapped labels yield an empty Extension and the
// unknown category.
func (c *Classifier) Classify(data []byte) types.ClassificationResult {
	return FromLabel(c.sniffer.Sniff(data))
}

// FromLabel resolves a content-type label without sniffing.
func FromLabel(label string) types.ClassificationResult {
	label = essence(label)
	ext, _ := ExtensionFor(label)
	return types.ClassificationResult{
		MIMELabel: label,
		Extension: ext,
		Category:  CategoryFor(ext),
	}
}

// ExtensionFor returns the extension mapped to label, if any.
func ExtensionFor(label string) (string, bool) {
	ext, ok := extensionByMIME[essence(label)]
	return ext, ok
}

// CategoryFor returns the category for ext; unmapped extensions are unknown.
func CategoryFor(ext string) types.Category {
	if c, ok := categoryByExtension[strings.ToLower(ext)]; ok {
		return c
	}
	return types.CategoryUnknown
}

// Extensions returns every extension the label table can produce, sorted.
func Extensions() []string {
	seen := make(map[string]bool)
	var exts []string
	for _, ext := range extensionByMIME {
		if !seen[ext] {
			seen[ext] = true
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// Labels returns every content-type label in the table, sorted.
func Labels() []string {
	labels := make([]string, 0, len(extensionByMIME))
	for label := range extensionByMIME {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// essence drops media-type parameters such as "; charset=utf-8".
func essence(label string) string {
	base, _, _ := strings.Cut(label, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
