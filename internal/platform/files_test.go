package platform

import (
	"path/filepath"
	"testing"
)

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	if filepath.Base(downloadsDir) != DownloadsDirName {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestExistingDownloadsDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if dir := ExistingDownloadsDir(); dir != "" {
		t.Errorf("Expected empty result without a Downloads dir, got: %s", dir)
	}

	if err := mkdir(filepath.Join(home, DownloadsDirName)); err != nil {
		t.Fatal(err)
	}
	if dir := ExistingDownloadsDir(); dir != filepath.Join(home, DownloadsDirName) {
		t.Errorf("Expected %s, got: %s", filepath.Join(home, DownloadsDirName), dir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.mov")

	if err := OpenFileInManager(nonExistentFile); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	if err := OpenFileInManager(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}
