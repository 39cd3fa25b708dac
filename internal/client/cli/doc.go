// Package cli implements the interactive command-line client for the board
// server. It provides a small REPL for registering, signing in, and managing
// boards over the HTTP API.
package cli
