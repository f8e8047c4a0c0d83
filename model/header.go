package model

import "fmt"

// HeaderRecord is a single detected heading. Records are immutable once
// emitted; within one detection result no two records share Header text.
type HeaderRecord struct {
	// Header is the assembled heading text.
	Header string `json:"header"`

	// HeaderLevelName is the display form of the level, "level {n}".
	HeaderLevelName string `json:"header_level_name"`

	// Page is the 1-based page the heading appears on.
	Page int `json:"page"`

	// HeaderLevel is the hierarchy level, 1 = most prominent.
	HeaderLevel int `json:"header_level"`
}

// LevelName formats a hierarchy level the way HeaderLevelName carries it.
func LevelName(level int) string {
	return fmt.Sprintf("level %d", level)
}
