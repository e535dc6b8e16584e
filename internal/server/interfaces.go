package server

// Server runs the form store transports of one process.
//
// RunServer blocks until SIGINT, SIGTERM or a listener failure, then shuts
// every transport down. Shutdown may also be called from another goroutine
// and is safe to call more than once.
type Server interface {
	RunServer()
	Shutdown()
}
