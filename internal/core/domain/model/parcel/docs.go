// Package parcel provides the Package aggregate of the mailroom domain: a
// physical package registered by staff, bound to a resident and to one of the
// mailroom's reusable package numbers.
//
// The package includes:
//   - Package: the aggregate root holding identity, resident, staff, provider and lifecycle
//   - Status: a closed state machine enforcing the legal lifecycle transitions
//
// Key business rules:
//   - A package is created in WAITING with an already allocated package number
//   - WAITING is the only state with outgoing transitions
//   - RETRIEVED, STAFF_RESOLVED and STAFF_REMOVED are terminal
//   - No transition leads back to WAITING
//   - Leaving WAITING stamps the retrieval time and the acting staff member
//
// The Go keyword "package" cannot name a Go package, hence "parcel".
package parcel
