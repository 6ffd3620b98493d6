package platform

import (
	"fmt"
	"os"
	"os/exec"
)

// Tool describes an external executable the pipeline depends on
type Tool struct {
	Name   string // display name, e.g. "yt-dlp"
	Binary string // configured binary: a bare name or a path
}

// ToolStatus is the lookup result for a Tool
type ToolStatus struct {
	Tool
	Path string
	Err  error
}

// Found reports whether the tool resolved to an executable
func (s ToolStatus) Found() bool {
	return s.Err == nil
}

// LookupExecutable resolves binary the way exec does: an existing path is
// used as is, anything else is searched in PATH.
func LookupExecutable(binary string) (string, error) {
	if binary == "" {
		return "", fmt.Errorf("no executable configured")
	}
	if info, err := os.Stat(binary); err == nil && !info.IsDir() {
		return binary, nil
	}
	p, err := exec.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("could not find %q in PATH: %w", binary, err)
	}
	return p, nil
}

// CheckTools looks up every tool and returns one status per tool, in order
func CheckTools(tools ...Tool) []ToolStatus {
	statuses := make([]ToolStatus, 0, len(tools))
	for _, tool := range tools {
		p, err := LookupExecutable(tool.Binary)
		statuses = append(statuses, ToolStatus{Tool: tool, Path: p, Err: err})
	}
	return statuses
}
