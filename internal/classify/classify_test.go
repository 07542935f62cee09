// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blob-extract/pkg/types"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestClassifySignatures(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantExt string
		wantCat types.Category
	}{
		{"png", pngMagic, "png", types.CategoryImages},
		{"plain text", []byte("just some plain ascii text\n"), "txt", types.CategoryDocuments},
		{"pdf", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"), "pdf", types.CategoryDocuments},
		{"gzip", []byte{0x1f, 0x8b, 0x08, 0x00, 0, 0, 0, 0, 0, 0x03}, "gz", types.CategoryArchives},
		{"json", []byte(`{"name": "blob", "size": 3}`), "json", types.CategoryCode},
		{"html", []byte("<!DOCTYPE html><html><body>hi</body></html>"), "html", types.CategoryCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.data)
			assert.Equal(t, tt.wantExt, got.Extension, "label %q", got.MIMELabel)
			assert.Equal(t, tt.wantCat, got.Category)
		})
	}
}

func TestClassifyStripsLabelParameters(t *testing.T) {
	got := Classify([]byte("hello"))
	assert.Equal(t, "text/plain", got.MIMELabel)
}

func TestClassifyDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inputs := [][]byte{nil, {}, pngMagic, []byte("text"), {0x00, 0xff, 0x10}}
	for i := 0; i < 50; i++ {
		buf := make([]byte, rng.Intn(600))
		rng.Read(buf)
		inputs = append(inputs, buf)
	}

	for _, in := range inputs {
		first := Classify(in)
		second := Classify(bytes.Clone(in))
		assert.Equal(t, first, second)
	}
}

func TestClassifyTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		buf := make([]byte, rng.Intn(2048))
		rng.Read(buf)

		got := Classify(buf)
		assert.True(t, got.Category.Valid(), "category %q", got.Category)
		if !got.HasExtension() {
			assert.Equal(t, types.CategoryUnknown, got.Category)
		}
	}
}

func TestFallbackForUnmappedLabel(t *testing.T) {
	c := New(SnifferFunc(func([]byte) string { return "application/x-unheard-of" }))

	got := c.Classify([]byte("anything"))
	assert.Equal(t, "application/x-unheard-of", got.MIMELabel)
	assert.False(t, got.HasExtension())
	assert.Equal(t, types.CategoryUnknown, got.Category)
}

func TestFallbackForBinaryNoise(t *testing.T) {
	got := Classify([]byte{0x00, 0x01, 0x02, 0x03, 0xfe, 0xff, 0x00, 0x7f})
	assert.Equal(t, "application/octet-stream", got.MIMELabel)
	assert.Empty(t, got.Extension)
	assert.Equal(t, types.CategoryUnknown, got.Category)
}

func TestCategoryCoverage(t *testing.T) {
	exts := Extensions()
	require.NotEmpty(t, exts)

	for _, ext := range exts {
		_, ok := categoryByExtension[ext]
		assert.True(t, ok, "extension %q has no category", ext)
		assert.True(t, CategoryFor(ext).Valid())
	}
}

func TestCategoryForUnmapped(t *testing.T) {
	assert.Equal(t, types.CategoryUnknown, CategoryFor(""))
	assert.Equal(t, types.CategoryUnknown, CategoryFor("bin"))
	assert.Equal(t, types.CategoryUnknown, CategoryFor("ai"))
	assert.Equal(t, types.CategoryImages, CategoryFor("PNG"))
}

func TestFromLabel(t *testing.T) {
	tests := []struct {
		label   string
		wantExt string
		wantCat types.Category
	}{
		{"image/jpeg", "jpeg", types.CategoryImages},
		{"video/x-matroska", "mkv", types.CategoryVideos},
		{"audio/flac", "flac", types.CategoryAudio},
		{"application/x-7z-compressed", "7z", types.CategoryArchives},
		{"application/x-elf", "elf", types.CategoryExecutables},
		{"text/x-python", "py", types.CategoryCode},
		{"application/epub+zip", "epub", types.CategoryEbooks},
		{"application/postscript", "ai", types.CategoryUnknown},
		{"Text/Plain; charset=utf-8", "txt", types.CategoryDocuments},
		{"application/octet-stream", "", types.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := FromLabel(tt.label)
			assert.Equal(t, tt.wantExt, got.Extension)
			assert.Equal(t, tt.wantCat, got.Category)
		})
	}
}

func TestLabelsAreNormalised(t *testing.T) {
	for _, label := range Labels() {
		assert.Equal(t, essence(label), label)
	}
}
