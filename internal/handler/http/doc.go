// Package http implements the HTTP transport of the form store.
//
// It exposes route wiring, request handlers, and middleware. Tracing, access
// logging, response compression and owner authentication are handled here
// before requests are delegated to the service layer. Handlers never see
// plaintext: form content and submission envelopes pass through as
// ciphertext.
package http
