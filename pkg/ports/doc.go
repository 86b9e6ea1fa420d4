/*
Package ports defines the driven ports (interfaces) for the Tally engine.

These interfaces decouple the calculator core from external implementations, allowing
sessions to live in various storage backends and be shared between replicas.

# Key Interfaces

  - StatelessEngine: The calculator core as seen by adapters (HTTP, MCP).
  - StateStore: Responsible for persisting and loading session State.
  - DistributedLocker: Provides distributed locking for handling concurrent session access.
*/
package ports
