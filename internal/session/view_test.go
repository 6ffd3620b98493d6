package session

import (
	"testing"

	"github.com/ytget/yt-mov/internal/model"
)

func TestRender_DownloadEnabled(t *testing.T) {
	tests := []struct {
		downloading bool
		expected    bool
	}{
		{false, true},
		{true, false},
	}

	for _, test := range tests {
		s := model.NewSession()
		s.Downloading = test.downloading
		v := Render(s)
		if v.DownloadEnabled != test.expected {
			t.Errorf("Render(downloading=%v).DownloadEnabled = %v, expected %v",
				test.downloading, v.DownloadEnabled, test.expected)
		}
		if v.Busy != test.downloading {
			t.Errorf("Render(downloading=%v).Busy = %v", test.downloading, v.Busy)
		}
	}
}

func TestRender_CopiesLogs(t *testing.T) {
	s := model.NewSession()
	s.AppendLog("one", 5)

	v := Render(s)
	v.Logs[0] = "changed"

	if s.Logs[0] != "one" {
		t.Errorf("Render must not share the log slice, got %q", s.Logs[0])
	}
}

func TestRender_Fields(t *testing.T) {
	s := model.Session{
		URL:        "https://youtube.com/watch?v=1",
		SavePath:   "/x/video.mp4",
		Stage:      model.StageCompleted,
		OutputPath: "/x/video.mov",
	}

	v := Render(s)
	if v.URL != s.URL || v.SavePath != s.SavePath || v.Stage != s.Stage || v.OutputPath != s.OutputPath {
		t.Errorf("Render copied fields incorrectly: %+v", v)
	}
	if v.DisplayName != "video.mov" {
		t.Errorf("Render().DisplayName = %q, expected video.mov", v.DisplayName)
	}
}

func TestRender_PickEnabled(t *testing.T) {
	tests := []struct {
		downloading bool
		picking     bool
		expected    bool
	}{
		{false, false, true},
		{false, true, false},
		{true, false, false},
	}

	for _, test := range tests {
		s := model.NewSession()
		s.Downloading = test.downloading
		s.Picking = test.picking
		if v := Render(s); v.PickEnabled != test.expected {
			t.Errorf("Render(downloading=%v, picking=%v).PickEnabled = %v, expected %v",
				test.downloading, test.picking, v.PickEnabled, test.expected)
		}
	}
}
