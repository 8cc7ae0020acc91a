// Package health provides liveness and readiness probes for the HTTP transport.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"resend": sender.Healthcheck,
//	}))
//
// Both handlers respond with JSON. Readiness runs every check concurrently
// under a shared timeout (5s by default) and answers 503 when any fails.
package health
