// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout the application,
// facilitating consistent and DRY testing across the codebase. Instead of defining
// inline mocks in individual test files, these standardized mock implementations
// can be reused.
//
// Usage:
//
// Import the mocks package in your test file and create the required mock:
//
//	import "github.com/taskvault/taskvault/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    mockService := &mocks.MockTaskService{
//	        GetTaskFn: func(ctx context.Context, id uuid.UUID) result.Result[domain.TaskItem] {
//	            return result.Failure[domain.TaskItem]("Task not found.")
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Give every method a sensible success default so tests only set what they assert
package mocks
