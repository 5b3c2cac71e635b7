package server

import "context"

// Server defines the lifecycle contract of the fake PatientVault server.
type Server interface {
	// Run serves requests until ctx is cancelled or a stop signal arrives,
	// then shuts down gracefully.
	Run(ctx context.Context) error
}
