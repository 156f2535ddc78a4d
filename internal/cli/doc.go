// Package cli turns the aarpublish command line into an app.Config. It owns
// flag parsing, usage output and the exit codes of invalid invocations; the
// project itself is read later by the app.
package cli
