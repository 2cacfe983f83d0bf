// Package domain defines the core business entities and errors.
// Entities here are persistence-agnostic; stores and services depend on
// this package, never the other way around.
package domain
