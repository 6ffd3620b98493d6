package model

// SaveDialog describes the file-save dialog shown when the user picks a target
type SaveDialog struct {
	Title       string
	FileName    string   // suggested file name
	FilterLabel string   // human-readable name of the extension filter
	Extensions  []string // allowed extensions including the dot, e.g. ".mp4"
	Location    string   // initial directory, empty for the toolkit default
}
