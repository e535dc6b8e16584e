// Package owner contains the form owner's local inputs: plaintext form
// definitions read from YAML or JSON files, and the owner's private key read
// from a PEM file or from a HashiCorp Vault KV secret.
package owner
