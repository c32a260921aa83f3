// Package database provides SurrealDB connectivity for the ClubHive API.
//
// The package is the connection layer beneath the remote document store
// (store.SurrealStore). It owns connecting, signing in, selecting the
// namespace and database, and unwrapping query responses.
//
// # Database Interface
//
//	type Database interface {
//	    Connect(ctx context.Context) error
//	    Close() error
//	    Ping(ctx context.Context) error
//	    Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
//	    QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
//	    Execute(ctx context.Context, query string, vars map[string]interface{}) error
//	}
//
// # Error Types
//
//   - ErrNotFound: the statement returned no records
//   - ErrConnection: connect, sign-in or ping failed
//   - ErrQuery: the statement failed
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database
