package ui

import "strings"

// ErrorHint turns a generation error message into advice for the user.
// The first matching rule wins.
func ErrorHint(message string) string {
	switch {
	case strings.Contains(message, "transcript"):
		return "This video doesn't have captions available. Try a different video with captions enabled."
	case strings.Contains(message, "API key"):
		return "Service configuration error. Please contact support."
	case strings.Contains(message, "network"):
		return "Network error. Please check your internet connection and try again."
	case strings.Contains(message, "timeout"):
		return "Request timed out. The video might be too long. Please try a shorter video."
	case strings.Contains(message, "Invalid YouTube URL"):
		return "Please enter a valid YouTube URL."
	default:
		return "An unexpected error occurred. Please try again."
	}
}
