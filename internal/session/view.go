package session

import "github.com/ytget/yt-mov/internal/model"

// View is everything the window needs to draw one frame
type View struct {
	URL             string
	SavePath        string
	DownloadEnabled bool
	PickEnabled     bool
	PickedPaths     int // changes only when the dialog replaced SavePath
	Busy            bool
	Stage           model.Stage
	OutputPath      string
	DisplayName     string
	Logs            []string
}

// Render describes the UI for s. It has no side effects.
func Render(s model.Session) View {
	logs := make([]string, len(s.Logs))
	copy(logs, s.Logs)

	return View{
		URL:             s.URL,
		SavePath:        s.SavePath,
		DownloadEnabled: !s.Downloading,
		PickEnabled:     !s.Downloading && !s.Picking,
		PickedPaths:     s.PickedPaths,
		Busy:            s.Downloading,
		Stage:           s.Stage,
		OutputPath:      s.OutputPath,
		DisplayName:     s.GetDisplayName(),
		Logs:            logs,
	}
}
