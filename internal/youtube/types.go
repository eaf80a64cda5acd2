package youtube

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Visibility is the publish visibility of an uploaded video.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
)

// ParseVisibility validates and normalizes a visibility string.
func ParseVisibility(value string) (Visibility, error) {
	switch v := Visibility(strings.ToLower(strings.TrimSpace(value))); v {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate:
		return v, nil
	default:
		return "", fmt.Errorf("unknown visibility %q (want public, unlisted, or private)", value)
	}
}

// RadioName is the value-name the wizard's visibility radio group uses.
func (v Visibility) RadioName() string {
	return strings.ToUpper(string(v))
}

// Label is the visible label text used for the role-based radio fallback.
func (v Visibility) Label() string {
	return cases.Title(language.English).String(string(v))
}

// UploadRequest describes one upload through the publish wizard. It is
// consumed exactly once.
type UploadRequest struct {
	FilePath      string
	Title         string
	Description   string
	Visibility    Visibility
	MadeForKids   bool
	ThumbnailPath string
	PlaylistName  string
}

// Validate confirms the request's file exists and is non-empty before the
// wizard is driven.
func (r UploadRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("upload title must not be empty")
	}
	info, err := os.Stat(r.FilePath)
	if err != nil {
		return fmt.Errorf("upload file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("upload file %s is a directory", r.FilePath)
	}
	if info.Size() == 0 {
		return fmt.Errorf("upload file %s is empty", r.FilePath)
	}
	if _, err := ParseVisibility(string(r.Visibility)); err != nil {
		return err
	}
	return nil
}

// UnknownVideoID is the sentinel returned when the published identifier
// cannot be extracted after a successful publish.
const UnknownVideoID = "unknown"

// UploadResult is produced exactly once per successful upload attempt.
type UploadResult struct {
	VideoID string
	Title   string
}

// URL derives the published video URL from the identifier.
func (r UploadResult) URL() string {
	return "https://youtu.be/" + r.VideoID
}

// Confirmed reports whether the published identifier was actually extracted
// rather than the sentinel.
func (r UploadResult) Confirmed() bool {
	return r.VideoID != "" && r.VideoID != UnknownVideoID
}
