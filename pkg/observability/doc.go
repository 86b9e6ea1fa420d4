/*
Package observability provides tools for monitoring the Tally engine.

Metrics and structured logs are both fed from domain.LifecycleHooks, so any
engine (library, HTTP, MCP, terminal) can be instrumented without changing its code:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	eng := tally.New(tally.WithLifecycleHooks(
		observability.Combine(metrics.Hooks(), observability.LogHooks(logger)),
	))
*/
package observability
