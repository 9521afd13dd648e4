// Package store defines interfaces for task persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies. All operations report
// outcomes through the shared Result contract instead of raw errors.
package store
