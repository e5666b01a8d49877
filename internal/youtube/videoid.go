package youtube

import (
	"fmt"
	"regexp"
)

var (
	videoURLPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/|m\.youtube\.com/watch\?v=|youtube\.com/watch\?.*&v=)([^#&?]*).*`)
	videoIDPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ExtractVideoID returns the 11 character video identifier embedded in a
// YouTube URL, or false when the URL has no recognisable identifier.
func ExtractVideoID(rawURL string) (string, bool) {
	m := videoURLPattern.FindStringSubmatch(rawURL)
	if len(m) < 2 || !videoIDPattern.MatchString(m[1]) {
		return "", false
	}
	return m[1], true
}

// ThumbnailURL returns the max resolution thumbnail for a video. The
// image is not checked for existence.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", videoID)
}
