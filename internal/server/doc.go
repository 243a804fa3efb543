// Package server hosts the operational HTTP endpoints of the process:
// Prometheus metrics and a liveness probe. Sequence generation itself is a
// local concern and never goes over the network; the server only observes
// it.
package server
