// Package mocks provides hand-written test doubles for the store and
// service interfaces. Call counters let tests assert that rejected
// requests never reach a store.
package mocks
