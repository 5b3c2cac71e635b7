package config

import "errors"

// Validation errors returned by the config validators when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, a missing or relative API root URL, or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrMissingCredentials indicates a blank username or password while
	// blank credentials are not explicitly allowed.
	ErrMissingCredentials = errors.New("missing credentials")
	// ErrInvalidContentFormat indicates an activity content format other
	// than json or html.
	ErrInvalidContentFormat = errors.New("invalid content format")
	// ErrInvalidSections indicates an unknown CCDA section name.
	ErrInvalidSections = errors.New("invalid section selection")
	// ErrInvalidFakeVaultConfigs indicates invalid fake vault settings
	// (for example, an empty sign key or a non-positive session duration).
	ErrInvalidFakeVaultConfigs = errors.New("invalid fake vault configuration")
)
