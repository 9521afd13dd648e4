// Package postgres provides the PostgreSQL implementation of the task
// storage interface defined in the internal/store package. It handles query
// execution, data mapping between domain tasks and database rows, the
// soft-delete visibility filtering, and the embedded schema migrations.
package postgres
