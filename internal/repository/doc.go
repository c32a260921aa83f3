// Package repository implements the data access layer for the ClubHive API.
//
// Each repository wraps one collection of the document store and offers
// typed whole-collection reads and writes plus the lookups the services
// need. Lists preserve store order.
//
// # Repository Pattern
//
//   - Constructor function (NewXxxRepository) accepts a store.Store and a store.Keyspace
//   - Lookups (GetByID, GetByEmail, Get) return nil, nil when nothing matches
//   - Writes replace the whole collection document
//
// # Legacy Records
//
// Records written by earlier clients use other field names (clubId, adminId,
// venue, qrCode, createdAt and so on). Every read passes each record through
// a per-collection adapter that renames those keys before decoding, so
// callers only ever see the canonical model.
//
// # Example Usage
//
//	clubs := repository.NewClubRepository(s, store.Keyspace{})
//	club, err := clubs.GetByID(ctx, "club-1")
//	if err != nil {
//	    return err
//	}
//	if club == nil {
//	    // Handle not found
//	}
package repository
