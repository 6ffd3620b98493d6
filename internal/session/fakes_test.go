package session

import (
	"context"
	"sync"

	"github.com/ytget/yt-mov/internal/convert"
	"github.com/ytget/yt-mov/internal/model"
)

type fakeDownloader struct {
	mu    sync.Mutex
	err   error
	calls []string // "url|path"
}

func (f *fakeDownloader) Download(_ context.Context, url, outputPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url+"|"+outputPath)
	return f.err
}

func (f *fakeDownloader) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fakeConverter struct {
	mu    sync.Mutex
	err   error
	size  int64
	calls []string
}

func (f *fakeConverter) Convert(_ context.Context, inputPath string) (convert.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, inputPath)
	return convert.Result{OutputPath: convert.OutputPath(inputPath), Size: f.size}, f.err
}

func (f *fakeConverter) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fakePicker struct {
	path string
	ok   bool
	err  error
	opts model.SaveDialog
}

func (f *fakePicker) PickSavePath(_ context.Context, opts model.SaveDialog) (string, bool, error) {
	f.opts = opts
	return f.path, f.ok, f.err
}

func testEnv(dl *fakeDownloader, conv *fakeConverter, picker FilePicker) Env {
	return Env{
		Downloader:  dl,
		Converter:   conv,
		Picker:      picker,
		Dialog:      DefaultSaveDialog(""),
		MaxLogLines: 50,
		NewRunID:    func() string { return "run-test" },
	}
}
