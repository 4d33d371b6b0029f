package server

// Server is the lifecycle contract of the todo API server.
//
// Implementations block in [RunServer] until an OS signal requests shutdown
// and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
