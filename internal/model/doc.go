package model

// Package model defines the session record shared by the event loop and the
// window: user input, pipeline stage, and the diagnostic log buffer. Values are
// copied, never shared, between the loop and its listeners.
