package convert

// Package convert runs the second pipeline stage: ffmpeg remuxes the MP4
// produced by yt-dlp into a QuickTime .mov sibling file.
