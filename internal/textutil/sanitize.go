// Package textutil holds small text helpers shared across the tool.
package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// DownloadFileName derives the local file name for a recording downloaded
// under the given title: spaces become underscores and the media extension
// is appended.
func DownloadFileName(title string) string {
	base := SanitizeFileName(title)
	if base == "" {
		base = "recording"
	}
	return strings.ReplaceAll(base, " ", "_") + ".mp4"
}
