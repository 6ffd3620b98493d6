package ui

import (
	"fyne.io/fyne/v2"
)

// AppIcon is the icon file looked up next to the working directory
const AppIcon = "yt-mov.png"

// LoadAppIcon loads the window icon from path. Packaged builds embed the
// icon through fyne package, so a missing file is not an error for callers.
func LoadAppIcon(path string) (fyne.Resource, error) {
	if path == "" {
		path = AppIcon
	}
	return fyne.LoadResourceFromPath(path)
}
