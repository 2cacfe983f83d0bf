// Package api contains the HTTP handlers that map requests onto the auth
// and task services and translate service outcomes into status codes.
package api
