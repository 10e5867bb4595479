package main

// Exit codes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config file)
	ExitDataError   = 3 // Data error (unreadable or unsupported input document)
	ExitBadInput    = 4 // Unsupported style or empty document
)
