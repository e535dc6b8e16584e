package cli

import "errors"

var (
	errNoToken           = errors.New("owner token is required (--token or ADAPTER_TOKEN)")
	errNoPublicKey       = errors.New("public key is required (--public-key)")
	errNoOwnerID         = errors.New("owner id is required (--owner)")
	errTokenConfig       = errors.New("token settings are incomplete (APP_TOKEN_SIGN_KEY, APP_TOKEN_ISSUER)")
	errPartialDecryption = errors.New("some responses could not be decrypted")
)
