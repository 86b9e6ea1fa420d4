/*
Package session implements session management and persistence orchestration.

A Manager serializes read-modify-write cycles on calculator sessions so concurrent
key presses for the same session never lose updates. Local mutexes cover a single
process; an optional ports.DistributedLocker extends the guarantee across replicas
that share a store.
*/
package session
