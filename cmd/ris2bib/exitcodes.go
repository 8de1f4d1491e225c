package main

// Exit codes
const (
	ExitSuccess = 0 // Success
	ExitError   = 1 // Usage error or unreadable input
)
