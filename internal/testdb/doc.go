// Package testdb provides utilities for database-backed tests.
//
// This package implements a transaction-based isolation pattern: each test
// runs inside its own transaction, which is rolled back when the test
// completes. Tests can therefore run in parallel against a shared database
// without interfering with each other and without manual cleanup.
//
// # Basic Usage
//
//	func TestMyFeature(t *testing.T) {
//	    if !testdb.IsIntegrationTestEnvironment() {
//	        t.Skip("Skipping integration test - requires DATABASE_URL environment variable")
//	    }
//
//	    db := testdb.Connect(t)
//	    testdb.SetupTestDatabaseSchema(t, db)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        taskStore := postgres.NewPostgresTaskStore(tx, nil)
//	        // Exercise the store; the transaction rolls back automatically.
//	    })
//	}
//
// # Environment Variables
//
// The package uses the following environment variables:
//
// - DATABASE_URL: Primary connection string
// - TASKVAULT_TEST_DB_URL: Alternative connection string
package testdb
