package owner

import "errors"

var (
	// ErrInvalidDefinition wraps every problem found in a form definition.
	ErrInvalidDefinition = errors.New("invalid form definition")

	// ErrUnsupportedFormat is returned for definition files that are neither
	// YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported definition format")

	// ErrNoKeySource is returned when neither a key file nor a Vault path is
	// configured.
	ErrNoKeySource = errors.New("no private key source configured")

	// ErrPrivateKeyNotFound is returned when the Vault secret exists but does
	// not hold the configured field.
	ErrPrivateKeyNotFound = errors.New("private key not found")
)
