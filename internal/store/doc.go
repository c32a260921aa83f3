// Package store provides the persistent document store behind ClubHive.
//
// Every collection (identities, clubs, memberships, events, registrations,
// announcements) is one JSON array document under a namespaced key such as
// "clubhive_events". The signed-in identity is a singleton document under
// "clubhive_current_identity". Writes replace the whole document.
//
// # Backends
//
//   - MemoryStore: process memory, used by tests and ephemeral runs
//   - SQLiteStore: a local documents table (modernc.org/sqlite)
//   - SurrealStore: document:<key> records in SurrealDB
//   - RedisStore: one string key per document
//
// # Errors
//
// A key that was never written is reported as found=false. A document that
// cannot be decoded is logged and also reported as absent, so the seeder
// rewrites it. Backend faults wrap ErrUnavailable.
package store
