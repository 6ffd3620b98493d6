package session

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/ytget/yt-mov/internal/model"
)

// Cmd is background work returned by Update. It runs off the event loop and
// its single result is fed back into Update.
type Cmd func(ctx context.Context) Message

// Diagnostic lines written into Session.Logs
const (
	LogRunningDownloader = "running yt-dlp..."
	LogDownloaderFailed  = "yt-dlp returned error"
	LogRunningConverter  = "running ffmpeg..."
	LogConverterFailed   = "ffmpeg returned error"
	LogPipelineSucceeded = "download & conversion successful!"
)

// Update applies msg to s and returns the new state together with the
// background work to start, if any. It performs no I/O.
func Update(s model.Session, msg Message, env Env) (model.Session, Cmd) {
	switch msg := msg.(type) {
	case InputURL:
		s.URL = msg.Text

	case InputSavePath:
		s.SavePath = msg.Text

	case RequestFilePicker:
		if s.Picking {
			return s, nil
		}
		if env.Picker == nil {
			s.AppendLog("no file picker available", env.MaxLogLines)
			return s, nil
		}
		s.Picking = true
		return s, pickSavePath(env.Picker, env.Dialog)

	case SavePathPicked:
		s.Picking = false
		if msg.Err != nil {
			s.AppendLog(fmt.Sprintf("file dialog failed: %v", msg.Err), env.MaxLogLines)
			return s, nil
		}
		if msg.OK {
			s.SavePath = msg.Path
			s.PickedPaths++
		}

	case StartDownload:
		if s.Downloading {
			return s, nil
		}
		s.Downloading = true
		s.Stage = model.StageDownloading
		s.RunID = env.runID()
		s.OutputPath = ""
		s.AppendLog(LogRunningDownloader, env.MaxLogLines)
		return s, runDownload(env, s.RunID, s.URL, s.SavePath)

	case DownloadDone:
		if msg.RunID != s.RunID || s.Stage != model.StageDownloading {
			return s, nil
		}
		if msg.Err != nil {
			s.AppendLog(fmt.Sprintf("%s: %v", LogDownloaderFailed, msg.Err), env.MaxLogLines)
			s.Downloading = false
			s.Stage = model.StageDownloadFailed
			return s, nil
		}
		s.Stage = model.StageConverting
		s.AppendLog(LogRunningConverter, env.MaxLogLines)
		return s, runConvert(env, s.RunID, msg.SavePath)

	case ConvertDone:
		if msg.RunID != s.RunID || s.Stage != model.StageConverting {
			return s, nil
		}
		if msg.Err != nil {
			s.AppendLog(fmt.Sprintf("%s: %v", LogConverterFailed, msg.Err), env.MaxLogLines)
			s.Stage = model.StageConvertFailed
		} else {
			s.AppendLog(fmt.Sprintf("%s %s (%s)", LogPipelineSucceeded, msg.OutputPath,
				humanize.Bytes(uint64(max(msg.Size, 0)))), env.MaxLogLines)
			s.Stage = model.StageCompleted
			s.OutputPath = msg.OutputPath
		}
		// stage-2 failure still ends the run
		s.Downloading = false
	}

	return s, nil
}

func pickSavePath(picker FilePicker, opts model.SaveDialog) Cmd {
	return func(ctx context.Context) Message {
		path, ok, err := picker.PickSavePath(ctx, opts)
		return SavePathPicked{Path: path, OK: ok, Err: err}
	}
}

func runDownload(env Env, runID, url, savePath string) Cmd {
	return func(ctx context.Context) Message {
		if env.Downloader == nil {
			return DownloadDone{RunID: runID, SavePath: savePath, Err: fmt.Errorf("no downloader configured")}
		}
		err := env.Downloader.Download(ctx, url, savePath)
		return DownloadDone{RunID: runID, SavePath: savePath, Err: err}
	}
}

func runConvert(env Env, runID, inputPath string) Cmd {
	return func(ctx context.Context) Message {
		if env.Converter == nil {
			return ConvertDone{RunID: runID, Err: fmt.Errorf("no converter configured")}
		}
		result, err := env.Converter.Convert(ctx, inputPath)
		return ConvertDone{RunID: runID, OutputPath: result.OutputPath, Size: result.Size, Err: err}
	}
}
