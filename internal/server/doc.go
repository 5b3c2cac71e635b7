// Package server runs the fake PatientVault HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
