// Package mailroom provides the Mailroom aggregate: one physical package room
// of an organization, the tenant that owns a package number pool, residents
// and packages.
//
// Key business rules:
//   - slugs are unique per organization and limited to lowercase letters, digits and dashes
//   - the pool size is fixed at creation (1..kernel.MaxPackageNumber)
//   - only ACTIVE mailrooms accept new packages
//   - a mailroom is retired (DEFUNCT), never deleted, while residents or packages reference it
package mailroom
