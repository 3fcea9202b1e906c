package commands

import (
	"context"

	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/domain/services"
)

// CreateMailroomCommandHandler persists a new mailroom together with its slot
// pool in one transaction, so a mailroom never exists without numbers.
type CreateMailroomCommandHandler struct {
	uowFactory  MailroomUoWFactory
	provisioner services.PoolProvisioner
}

func NewCreateMailroomCommandHandler(uowFactory MailroomUoWFactory) CreateMailroomCommandHandler {
	return CreateMailroomCommandHandler{
		uowFactory:  uowFactory,
		provisioner: services.NewPoolProvisioner(),
	}
}

// Handle returns the created mailroom.
func (h *CreateMailroomCommandHandler) Handle(ctx context.Context, cmd CreateMailroomCommand) (*mailroom.Mailroom, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	m, err := mailroom.NewMailroom(cmd.MailroomID(), cmd.OrganizationID(), cmd.Slug(), cmd.Name(),
		cmd.PoolSize(), cmd.Settings())
	if err != nil {
		return nil, err
	}

	slots, err := h.provisioner.Provision(m)
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

	if err = uow.MailroomRepository().Add(ctx, m); err != nil {
		return nil, err
	}
	if err = uow.SlotRepository().AddPool(ctx, slots); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return m, nil
}
