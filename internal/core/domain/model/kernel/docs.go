// Package kernel provides the shared domain primitives of the mailroom service.
//
// The package includes:
//   - UUID: identifier value object for mailrooms, residents, staff, packages and invitations
//   - PackageNumber: the small reusable integer staff write on a physical package
//
// Both are immutable value objects whose zero values are invalid; they must be
// created through their constructors and validated when restored from storage.
package kernel
