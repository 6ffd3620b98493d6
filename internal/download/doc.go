package download

// Package download runs the first pipeline stage: yt-dlp fetches the video and
// merges it into a single MP4 at the path the user chose. It is driven through
// github.com/lrstanley/go-ytdlp and only reports whether the process exited
// with status zero.
