package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/model/resident"
	"mailroom/internal/core/domain/model/slot"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
)

// DefaultReleaseBackOff bounds the compensating release of a registration that
// failed after its number was allocated.
func DefaultReleaseBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxElapsedTime = 2 * time.Second
	return backoff.WithMaxRetries(b, 4)
}

// RegisterPackageCommandHandler implements package registration:
//
//  1. the mailroom must accept packages and the resident must exist in it;
//     nothing is allocated otherwise
//  2. a number is allocated and committed on its own, like the pool's RPC
//  3. the WAITING package is inserted in a second transaction
//  4. if step 3 fails the number is released again, retried with backoff;
//     a release that still fails leaves the slot leaked until the
//     reconciliation job returns it
//  5. a number still held by a WAITING package (possible after a manual
//     release) is left unavailable and allocation is retried once
//  6. the arrival email is sent after commit and its failure is only logged
type RegisterPackageCommandHandler struct {
	uowFactory     PackageUoWFactory
	notifier       ports.Notifier
	logger         *slog.Logger
	releaseBackOff func() backoff.BackOff
}

// NewRegisterPackageCommandHandler uses DefaultReleaseBackOff when releaseBackOff is nil.
func NewRegisterPackageCommandHandler(
	uowFactory PackageUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
	releaseBackOff func() backoff.BackOff,
) RegisterPackageCommandHandler {
	if releaseBackOff == nil {
		releaseBackOff = DefaultReleaseBackOff
	}
	return RegisterPackageCommandHandler{
		uowFactory:     uowFactory,
		notifier:       notifier,
		logger:         logger.With("component", "register_package"),
		releaseBackOff: releaseBackOff,
	}
}

// Handle returns the WAITING package with its allocated number.
func (h *RegisterPackageCommandHandler) Handle(ctx context.Context, cmd RegisterPackageCommand) (*parcel.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	m, r, number, pkg, err := h.register(ctx, cmd)
	if errors.Is(err, slot.ErrNumberInUse) {
		m, r, number, pkg, err = h.register(ctx, cmd)
	}
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "package registered",
		"mailroom_id", cmd.MailroomID().String(),
		"package_id", pkg.ID().String(),
		"package_number", number.Int())

	if err = h.notifier.PackageArrived(ctx, ports.PackageNotice{
		MailroomName:   m.Name(),
		ResidentName:   r.FullName(),
		ResidentEmail:  r.Email(),
		PackageNumber:  number.Int(),
		Provider:       pkg.Provider(),
		AdditionalText: m.Settings().EmailAdditionalText,
		Hours:          m.Settings().Hours,
		OccurredAt:     pkg.CreatedAt(),
	}); err != nil {
		h.logger.WarnContext(ctx, "arrival email not sent", "package_id", pkg.ID().String(), "error", err)
	}

	return pkg, nil
}

func (h *RegisterPackageCommandHandler) register(
	ctx context.Context,
	cmd RegisterPackageCommand,
) (*mailroom.Mailroom, *resident.Resident, kernel.PackageNumber, *parcel.Package, error) {
	m, r, number, err := h.reserve(ctx, cmd)
	if err != nil {
		return nil, nil, number, nil, err
	}

	pkg, err := h.insert(ctx, cmd, number)
	if errors.Is(err, slot.ErrNumberInUse) {
		h.logger.ErrorContext(ctx, "allocated package number is held by a waiting package",
			"mailroom_id", cmd.MailroomID().String(), "package_number", number.Int(), "error", err)
		return nil, nil, number, nil, err
	}
	if err != nil {
		h.compensate(ctx, cmd.MailroomID(), number)
		return nil, nil, number, nil, err
	}
	return m, r, number, pkg, nil
}

func (h *RegisterPackageCommandHandler) reserve(
	ctx context.Context,
	cmd RegisterPackageCommand,
) (*mailroom.Mailroom, *resident.Resident, kernel.PackageNumber, error) {
	var none kernel.PackageNumber

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, none, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	m, err := uow.MailroomRepository().Get(ctx, cmd.MailroomID())
	if err != nil {
		return nil, nil, none, notFound(ErrMailroomNotFound, err)
	}
	if err = m.EnsureAcceptsPackages(); err != nil {
		return nil, nil, none, err
	}

	r, err := uow.ResidentRepository().GetInMailroom(ctx, cmd.MailroomID(), cmd.ResidentID())
	if err != nil {
		return nil, nil, none, notFound(ErrResidentNotFound, err)
	}

	number, err := uow.SlotRepository().AllocateNext(ctx, cmd.MailroomID())
	if err != nil {
		if errors.Is(err, slot.ErrQueueExhausted) {
			metrics.QueueExhausted.Inc()
		}
		return nil, nil, none, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, none, err
	}

	metrics.SlotsAllocated.Inc()
	return m, r, number, nil
}

func (h *RegisterPackageCommandHandler) insert(
	ctx context.Context,
	cmd RegisterPackageCommand,
	number kernel.PackageNumber,
) (*parcel.Package, error) {
	pkg, err := parcel.NewPackage(cmd.PackageID(), cmd.MailroomID(), cmd.ResidentID(), cmd.StaffID(),
		number, cmd.Provider(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return pkg, nil
}

// compensate is best effort: it never changes the error the caller sees.
func (h *RegisterPackageCommandHandler) compensate(ctx context.Context, mailroomID kernel.UUID, number kernel.PackageNumber) {
	ctx = context.WithoutCancel(ctx)

	op := func() error {
		err := h.uowFactory.Create().SlotRepository().Release(ctx, mailroomID, number)
		if errors.Is(err, slot.ErrSlotNotFound) {
			return backoff.Permanent(err)
		}
		return err
	}

	if err := backoff.Retry(op, backoff.WithContext(h.releaseBackOff(), ctx)); err != nil {
		metrics.SlotsLeaked.Inc()
		h.logger.ErrorContext(ctx, "compensating release failed, package number leaked",
			"mailroom_id", mailroomID.String(), "package_number", number.Int(), "error", err)
		return
	}

	metrics.SlotsReleased.WithLabelValues(metrics.ReleaseCompensation).Inc()
	h.logger.WarnContext(ctx, "package number released after failed registration",
		"mailroom_id", mailroomID.String(), "package_number", number.Int())
}
