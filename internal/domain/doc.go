// Package domain contains the core business entities, value objects, and
// domain logic of the application. It holds the task model, its closed
// status/priority enumerations, and the validation rules that decide which
// task states are legal, independent of any specific infrastructure or
// delivery mechanism.
package domain
