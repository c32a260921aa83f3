// Package testdb provides isolated document stores for ClubHive tests.
//
// # Test Store Setup
//
// Create a store for each test:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    clubs := repository.NewClubRepository(tdb.Store, tdb.Keys)
//	}
//
// # Backends
//
// TEST_STORE_BACKEND selects the backend. The default "sqlite" opens a file
// in the test's temp directory. "memory" keeps documents in process.
// "surrealdb" (TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER, TEST_DB_PASSWORD)
// and "redis" (TEST_REDIS_ADDR) run against real servers.
//
// # Isolation
//
// Each TestDB gets a unique key namespace:
//
//	func TestA(t *testing.T) {
//	    tdb := testdb.New(t) // keys: test_171..._1_clubs
//	}
//
// # Raw Documents
//
// MustSet writes a document verbatim, for exercising corrupt or legacy data:
//
//	tdb.MustSet(store.Events, `{not json`)
package testdb
