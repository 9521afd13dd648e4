// Package api handles incoming HTTP requests, routing, and response
// formatting for the task endpoints. It acts as an adapter between external
// clients and the task service, translating HTTP concerns to task operations
// and failed results back to status codes: validation failures become 400
// with the full violation list, missing tasks become 404 with the fixed
// not-found message, and storage failures become a generic 500 whose detail
// is only ever logged.
package api
