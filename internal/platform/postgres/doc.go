// Package postgres implements the store interfaces using a PostgreSQL
// database accessed through database/sql with the pgx stdlib driver.
// Every store operation is a single statement, so the engine's per-statement
// atomicity gives the all-or-nothing write guarantee the stores promise.
package postgres
