package ui

// Package ui contains the Fyne-based desktop user interface. MainWindow turns
// widget events into session messages and renders session views; FilePicker
// adapts the Fyne save dialog to the session's picker contract. All UI
// strings are localized via Localization.
