// Package services provides domain services for work that spans more than one
// aggregate of the mailroom model.
//
// The package includes:
//   - PoolProvisioner: builds the package number pool of a new mailroom
package services
