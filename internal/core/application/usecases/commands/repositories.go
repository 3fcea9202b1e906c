// Package commands contains the write side of the mailroom service.
// Every command is a guarded value built by its constructor and handled by a
// dedicated handler that owns the transaction boundary.
package commands

import (
	"context"
	"errors"
	"fmt"

	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
)

// Use-case level not-found errors. Handlers wrap the repository error so both
// this sentinel and errs.ErrObjectNotFound match.
var (
	ErrMailroomNotFound   = errors.New("mailroom not found")
	ErrResidentNotFound   = errors.New("resident not found")
	ErrPackageNotFound    = errors.New("package not found")
	ErrInvitationNotFound = errors.New("invitation not found")
)

// Unit of work interfaces narrowed to what each group of handlers touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	MailroomRepoFactory interface {
		MailroomRepository() ports.MailroomRepository
	}

	SlotRepoFactory interface {
		SlotRepository() ports.SlotRepository
	}

	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	ResidentRepoFactory interface {
		ResidentRepository() ports.ResidentRepository
	}

	InvitationRepoFactory interface {
		InvitationRepository() ports.InvitationRepository
	}

	// MailroomUoW covers mailroom creation (mailroom plus its slot pool) and
	// settings updates.
	MailroomUoW interface {
		TxManager
		MailroomRepoFactory
		SlotRepoFactory
	}

	MailroomUoWFactory interface {
		Create() MailroomUoW
	}

	// SlotUoW covers direct pool operations: allocate, release, reconcile.
	SlotUoW interface {
		TxManager
		SlotRepoFactory
	}

	SlotUoWFactory interface {
		Create() SlotUoW
	}

	// PackageUoW covers the package lifecycle, which reads the mailroom and
	// resident and moves slots.
	PackageUoW interface {
		TxManager
		MailroomRepoFactory
		ResidentRepoFactory
		SlotRepoFactory
		PackageRepoFactory
	}

	PackageUoWFactory interface {
		Create() PackageUoW
	}

	ResidentUoW interface {
		TxManager
		ResidentRepoFactory
	}

	ResidentUoWFactory interface {
		Create() ResidentUoW
	}

	InvitationUoW interface {
		TxManager
		InvitationRepoFactory
	}

	InvitationUoWFactory interface {
		Create() InvitationUoW
	}
)

// notFound tags a repository not-found error with the use-case sentinel.
func notFound(sentinel, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}
