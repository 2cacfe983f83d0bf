// Package service contains the application services that orchestrate
// domain operations over the store interfaces. Services translate store
// outcomes into service-level errors; they never retry and never write
// partially.
package service
