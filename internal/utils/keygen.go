package utils

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"
)

const defaultVideoExt = ".mp4"

// StorageKey builds a unique blob key for an uploaded file:
// <unix-millis>-<random>-<slug><ext>. The time prefix keeps keys sorting
// close to upload order in the bucket namespace.
func StorageKey(originalName string) string {
	base := filepath.Base(originalName)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" || ext == "." {
		ext = defaultVideoExt
	}
	slug := slugify(stem)
	if slug == "" {
		slug = "video"
	}
	return fmt.Sprintf("%d-%d-%s%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), slug, ext)
}

// slugify keeps letters, digits, dot, underscore and dash; everything else
// (whitespace included) becomes an underscore.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
