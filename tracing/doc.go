// Package tracing wraps OpenTelemetry so that planning sessions, builds and
// sweeps can be traced without the rest of the code base importing the SDK.
// Until Init is called spans are no-ops.
package tracing
