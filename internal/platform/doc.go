package platform

// Package platform contains OS integration: locating the external tools,
// the user's Downloads directory, and revealing files in the file manager.
