// Package server runs the form store's transports: the HTTP API and the
// optional gRPC health endpoint. It owns startup, signal handling and
// graceful shutdown; health flips to NOT_SERVING before the listeners close.
package server
