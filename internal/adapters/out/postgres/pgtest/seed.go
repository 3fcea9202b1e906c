package pgtest

import (
	"context"

	postgresadapter "mailroom/internal/adapters/out/postgres"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/domain/model/resident"
	"mailroom/internal/core/domain/services"
)

// SeedMailroom stores an ACTIVE mailroom with a fully available pool of
// poolSize numbers.
func (d *Database) SeedMailroom(ctx context.Context, slug string, poolSize int) (*mailroom.Mailroom, error) {
	m, err := mailroom.NewMailroom(kernel.NewUUID(), kernel.NewUUID(), slug, "Hall "+slug, poolSize,
		mailroom.Settings{
			PickupOption:        mailroom.PickupByResidentID,
			Hours:               map[string]string{"monday": "09:00-17:00"},
			EmailAdditionalText: "Bring your student card.",
		})
	if err != nil {
		return nil, err
	}
	slots, err := services.NewPoolProvisioner().Provision(m)
	if err != nil {
		return nil, err
	}

	uow := postgresadapter.NewGormUnitOfWorkFactory(d.DB).Create()
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
	return m, uow.Commit(ctx)
}

// SeedResident stores an ACTIVE resident.
func (d *Database) SeedResident(
	ctx context.Context,
	mailroomID kernel.UUID,
	first, last, studentID string,
) (*resident.Resident, error) {
	r, err := resident.NewResident(kernel.NewUUID(), mailroomID, resident.Profile{
		FirstName: first,
		LastName:  last,
		StudentID: studentID,
		Email:     studentID + "@example.edu",
	})
	if err != nil {
		return nil, err
	}

	repo := postgresadapter.NewGormUnitOfWorkFactory(d.DB).Create().ResidentRepository()
	if err = repo.Add(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
