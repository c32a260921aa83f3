// Package fixtures provides test data factories for the ClubHive API.
//
// # Factory Pattern
//
// Create a factory over a store:
//
//	f := fixtures.New(tdb.Store, tdb.Keys)
//
// # Creating Test Data
//
//	admin := f.CreateAdmin(t)
//	student := f.CreateStudent(t)
//	club := f.CreateClub(t, admin)
//	f.AddMember(t, student, club)
//	event := f.CreateEvent(t, club, fixtures.WithCapacity(50))
//	reg := f.Register(t, event, student)
//
// # Customization
//
// Use option functions for customization:
//
//	student := f.CreateStudent(t, fixtures.WithEmail("custom@example.com"))
//	event := f.CreateEvent(t, club, fixtures.Unbounded())
//
// Records are stamped with Factory.Now, which tests may change.
package fixtures
