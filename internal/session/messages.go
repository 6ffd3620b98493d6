package session

// Message is an input event for Update. The set is closed: only types in this
// package implement it.
type Message interface {
	isMessage()
}

// InputURL replaces the URL with the current text of the URL field
type InputURL struct {
	Text string
}

// InputSavePath replaces the save path with the current text of the path field
type InputSavePath struct {
	Text string
}

// RequestFilePicker asks for the save dialog
type RequestFilePicker struct{}

// SavePathPicked is the result of the save dialog. OK is false on cancel.
type SavePathPicked struct {
	Path string
	OK   bool
	Err  error
}

// StartDownload starts the pipeline with the current URL and save path
type StartDownload struct{}

// DownloadDone reports the end of the yt-dlp stage
type DownloadDone struct {
	RunID    string
	SavePath string
	Err      error
}

// ConvertDone reports the end of the ffmpeg stage
type ConvertDone struct {
	RunID      string
	OutputPath string
	Size       int64
	Err        error
}

func (InputURL) isMessage()          {}
func (InputSavePath) isMessage()     {}
func (RequestFilePicker) isMessage() {}
func (SavePathPicked) isMessage()    {}
func (StartDownload) isMessage()     {}
func (DownloadDone) isMessage()      {}
func (ConvertDone) isMessage()       {}
