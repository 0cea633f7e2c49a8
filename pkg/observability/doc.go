/*
Package observability turns machine lifecycle events into Prometheus metrics.

Metrics are kept in a private registry, so several machines in one process do
not collide, and can be written to a text file in the exposition format at the
end of a session for node_exporter's textfile collector or for inspection.
*/
package observability
