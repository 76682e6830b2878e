// Package cli provides the interactive PatientKeeper command-line client.
//
// It wires configuration, the remote source, the in-memory store, the
// notification queue and the form service, and drives them from a REPL.
// Typical flow: start the initial fetch in the background, accept commands
// while it runs (views report that data is still loading), and render
// notifications as mutations raise them.
//
// Key features:
//   - List patients and show one expanded
//   - Add / Edit through a validated form
//   - Delete with confirmation
//   - Retry the initial load after a failure
//
// The App is an explicit handle: NewApp builds it, Run blocks until the
// user exits and Close releases the notification timer and waits for the
// background load. See App and runREPL for details.
package cli
