package model

import (
	"path/filepath"
	"strings"
)

// DefaultMaxLogLines bounds Session.Logs when no explicit limit is given
const DefaultMaxLogLines = 200

// Session is the single in-memory record of user input and pipeline progress
type Session struct {
	URL         string
	SavePath    string
	Downloading bool     // true from StartDownload until the final stage reports
	Logs        []string // most recent diagnostics, oldest first
	LogTotal    int      // diagnostics ever appended, including dropped ones
	Stage       Stage
	RunID       string // id of the in-flight or last pipeline run
	OutputPath  string // converted file of the last successful run
	Picking     bool   // a save dialog is open
	PickedPaths int    // save paths chosen through the dialog so far
}

// NewSession returns the initial empty session
func NewSession() Session {
	return Session{Stage: StageIdle}
}

// AppendLog adds a diagnostic line, dropping the oldest lines beyond limit.
// A limit <= 0 falls back to DefaultMaxLogLines.
func (s *Session) AppendLog(line string, limit int) {
	if limit <= 0 {
		limit = DefaultMaxLogLines
	}

	logs := make([]string, 0, min(len(s.Logs)+1, limit))
	if keep := len(s.Logs) + 1 - limit; keep > 0 {
		logs = append(logs, s.Logs[keep:]...)
	} else {
		logs = append(logs, s.Logs...)
	}
	s.Logs = append(logs, line)
	s.LogTotal++
}

// NewLogs returns the diagnostics appended since a previous LogTotal value.
// Lines already dropped from the buffer are not returned.
func (s Session) NewLogs(since int) []string {
	n := s.LogTotal - since
	if n <= 0 {
		return nil
	}
	if n > len(s.Logs) {
		n = len(s.Logs)
	}
	return s.Logs[len(s.Logs)-n:]
}

// GetDisplayName returns the output file name without directory, or the save
// path name when nothing has been converted yet
func (s Session) GetDisplayName() string {
	path := s.OutputPath
	if path == "" {
		path = s.SavePath
	}
	if strings.TrimSpace(path) == "" {
		return ""
	}
	return filepath.Base(path)
}
