// Package helpers provides test utility functions for the ClubHive API.
//
// # Request Helpers
//
// Build requests for handler tests:
//
//	req := helpers.NewRequest(t, http.MethodPost, "/v1/clubs/club-1/join").
//	    WithPathValue("clubId", "club-1").
//	    Build()
//
// # Assertion Helpers
//
//	helpers.AssertStatus(t, rr, http.StatusOK)
//	helpers.AssertProblemDetails(t, rr, http.StatusForbidden, model.ErrCodeForbidden)
//	helpers.AssertValidationError(t, rr, "title")
//
// # Pointer Helpers
//
//	capacity := helpers.IntPtr(50)
package helpers
