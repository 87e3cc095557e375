/*
Package observability turns engine lifecycle events into Prometheus metrics.

A hop process lives for a single call, so metrics are not scraped. Instead the
registry is flushed to a node_exporter textfile when the call ends:

	m := observability.NewMetrics()
	eng := hop.New(hop.WithLifecycleHooks(m.Hooks()))
	// ...
	_ = m.WriteTextfile("/var/lib/node_exporter/hop.prom")
*/
package observability
