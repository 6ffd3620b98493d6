package session

// Package session holds the application state machine. Update is a pure
// transition over an enumerated message set, Render turns state into a view
// description, and Program is the single goroutine allowed to apply Update.
// Side effects (subprocesses, dialogs) are returned as Cmd values and run on
// their own goroutines; each delivers exactly one message back to the loop.
