package http

var (
	PanicRecoveryMiddleware = panicRecoveryMiddleware
)
