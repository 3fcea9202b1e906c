package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/metrics"
)

// TransitionPackageCommandHandler is the status transition guard.
//
// Within one transaction it loads the package inside the caller's mailroom,
// applies the transition in memory, persists it with a compare-and-swap on
// status = WAITING and releases the package's number. A package that already
// left WAITING fails before any release is attempted; the loser of a
// concurrent race fails at the compare-and-swap. Both observe
// parcel.ErrInvalidTransition.
type TransitionPackageCommandHandler struct {
	uowFactory PackageUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewTransitionPackageCommandHandler(
	uowFactory PackageUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) TransitionPackageCommandHandler {
	return TransitionPackageCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "transition_package"),
	}
}

func (h *TransitionPackageCommandHandler) Handle(ctx context.Context, cmd TransitionPackageCommand) (*parcel.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := uow.PackageRepository().GetInMailroom(ctx, cmd.MailroomID(), cmd.PackageID())
	if err != nil {
		return nil, notFound(ErrPackageNotFound, err)
	}

	if err = pkg.Transition(cmd.Target(), cmd.ActingStaffID(), time.Now()); err != nil {
		h.countTransition(cmd.Target(), err)
		return nil, err
	}

	if err = uow.PackageRepository().SaveTransition(ctx, pkg); err != nil {
		h.countTransition(cmd.Target(), err)
		return nil, err
	}

	released := true
	if err = uow.SlotRepository().Release(ctx, pkg.MailroomID(), pkg.Number()); err != nil {
		if !errors.Is(err, slot.ErrSlotNotFound) {
			return nil, err
		}
		released = false
		h.logger.ErrorContext(ctx, "package references a package number that was never provisioned",
			"mailroom_id", pkg.MailroomID().String(),
			"package_id", pkg.ID().String(),
			"package_number", pkg.Number().Int())
	}

	var notice *ports.PackageNotice
	if pkg.Status() == parcel.Retrieved {
		notice = h.retrievalNotice(ctx, uow, pkg)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.countTransition(cmd.Target(), nil)
	if released {
		metrics.SlotsReleased.WithLabelValues(metrics.ReleaseTransition).Inc()
	}

	if notice != nil {
		if err = h.notifier.PackageRetrieved(ctx, *notice); err != nil {
			h.logger.WarnContext(ctx, "pickup confirmation not sent", "package_id", pkg.ID().String(), "error", err)
		}
	}
	return pkg, nil
}

// retrievalNotice is best effort; a lookup failure only skips the email.
func (h *TransitionPackageCommandHandler) retrievalNotice(
	ctx context.Context,
	uow PackageUoW,
	pkg *parcel.Package,
) *ports.PackageNotice {
	m, err := uow.MailroomRepository().Get(ctx, pkg.MailroomID())
	if err != nil {
		h.logger.WarnContext(ctx, "mailroom lookup for pickup email failed", "error", err)
		return nil
	}
	r, err := uow.ResidentRepository().GetInMailroom(ctx, pkg.MailroomID(), pkg.ResidentID())
	if err != nil {
		h.logger.WarnContext(ctx, "resident lookup for pickup email failed", "error", err)
		return nil
	}

	return &ports.PackageNotice{
		MailroomName:   m.Name(),
		ResidentName:   r.FullName(),
		ResidentEmail:  r.Email(),
		PackageNumber:  pkg.Number().Int(),
		Provider:       pkg.Provider(),
		AdditionalText: m.Settings().EmailAdditionalText,
		Hours:          m.Settings().Hours,
		OccurredAt:     *pkg.RetrievedAt(),
	}
}

func (h *TransitionPackageCommandHandler) countTransition(target parcel.Status, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, parcel.ErrInvalidTransition):
		outcome = "conflict"
	case err != nil:
		outcome = "error"
	}
	metrics.PackageTransitions.WithLabelValues(target.String(), outcome).Inc()
}
