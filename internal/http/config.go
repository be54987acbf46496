package http

// RouterConfig holds all dependencies for creating the HTTP router.
type RouterConfig struct {
	Database Store

	// Application info
	Version string
}
