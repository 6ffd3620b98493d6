package model

// Stage represents where the download pipeline currently is
type Stage string

const (
	// StageIdle means no pipeline has run yet
	StageIdle Stage = "Idle"

	// StageDownloading means yt-dlp is running
	StageDownloading Stage = "Downloading"

	// StageConverting means ffmpeg is running
	StageConverting Stage = "Converting"

	// StageCompleted means both stages exited with status zero
	StageCompleted Stage = "Completed"

	// StageDownloadFailed means yt-dlp failed and ffmpeg never ran
	StageDownloadFailed Stage = "DownloadFailed"

	// StageConvertFailed means yt-dlp succeeded but ffmpeg failed
	StageConvertFailed Stage = "ConvertFailed"
)

// String returns the string representation of Stage
func (s Stage) String() string {
	return string(s)
}

// IsActive returns true while an external process is running
func (s Stage) IsActive() bool {
	return s == StageDownloading || s == StageConverting
}

// IsFinished returns true for terminal stages (completed or failed)
func (s Stage) IsFinished() bool {
	return s == StageCompleted || s == StageDownloadFailed || s == StageConvertFailed
}

// IsFailure returns true if the last run ended in either failure kind
func (s Stage) IsFailure() bool {
	return s == StageDownloadFailed || s == StageConvertFailed
}
