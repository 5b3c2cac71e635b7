// Package config provides configuration loading, merging, and validation
// facilities for the example binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source receive the defaults of the PatientVault
// example (see applyDefaults). The main entry points are [GetClientConfig]
// for the workflow binary and [GetFakeVaultConfig] for the local fake API.
package config
