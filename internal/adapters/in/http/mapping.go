package http

import (
	"mailroom/internal/core/application/usecases/queries"
	"mailroom/internal/core/domain/model/invitation"
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/mailroom"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/model/resident"
	"mailroom/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernel(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optional[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func settingsFromRequest(body servers.MailroomSettings) (mailroom.Settings, error) {
	option, err := mailroom.ParsePickupOption(string(body.PickupOption))
	if err != nil {
		return mailroom.Settings{}, err
	}
	return mailroom.Settings{
		PickupOption:        option,
		Hours:               deref(body.Hours),
		EmailAdditionalText: deref(body.EmailAdditionalText),
		AdminEmail:          deref(body.AdminEmail),
	}, nil
}

func settingsResponse(s mailroom.Settings) servers.MailroomSettings {
	resp := servers.MailroomSettings{
		PickupOption:        servers.PickupOption(s.PickupOption),
		EmailAdditionalText: optional(s.EmailAdditionalText),
		AdminEmail:          optional(s.AdminEmail),
	}
	if len(s.Hours) > 0 {
		hours := s.Hours
		resp.Hours = &hours
	}
	return resp
}

func mailroomResponse(m *mailroom.Mailroom) servers.Mailroom {
	return servers.Mailroom{
		Id:             m.ID().Bytes(),
		OrganizationId: m.OrganizationID().Bytes(),
		Slug:           m.Slug(),
		Name:           m.Name(),
		Status:         servers.MailroomStatus(m.Status()),
		PoolSize:       m.PoolSize(),
		Settings:       settingsResponse(m.Settings()),
	}
}

func mailroomViewResponse(v queries.MailroomView) servers.Mailroom {
	return servers.Mailroom{
		Id:             v.ID.Bytes(),
		OrganizationId: v.OrganizationID.Bytes(),
		Slug:           v.Slug,
		Name:           v.Name,
		Status:         servers.MailroomStatus(v.Status),
		PoolSize:       v.PoolSize,
		Settings: settingsResponse(mailroom.Settings{
			PickupOption:        mailroom.PickupOption(v.PickupOption),
			Hours:               v.Hours,
			EmailAdditionalText: v.EmailAdditionalText,
			AdminEmail:          v.AdminEmail,
		}),
	}
}

func uuidPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func packageResponse(p *parcel.Package) servers.Package {
	return servers.Package{
		Id:            p.ID().Bytes(),
		ResidentId:    p.ResidentID().Bytes(),
		PackageNumber: p.Number().Int(),
		Provider:      p.Provider(),
		Status:        servers.PackageStatus(p.Status().String()),
		CreatedAt:     p.CreatedAt(),
		RetrievedAt:   p.RetrievedAt(),
		PickupStaffId: uuidPtr(p.PickupStaffID()),
	}
}

func packageViewsResponse(views []queries.PackageView) []servers.Package {
	resp := make([]servers.Package, len(views))
	for i, v := range views {
		resp[i] = servers.Package{
			Id:            v.ID.Bytes(),
			ResidentId:    v.ResidentID.Bytes(),
			ResidentName:  optional(v.ResidentName),
			StudentId:     optional(v.StudentID),
			PackageNumber: v.PackageNumber,
			Provider:      v.Provider,
			Status:        servers.PackageStatus(v.Status.String()),
			CreatedAt:     v.CreatedAt,
			RetrievedAt:   v.RetrievedAt,
			PickupStaffId: uuidPtr(v.PickupStaffID),
		}
	}
	return resp
}

func profileFromRequest(body servers.NewResident) resident.Profile {
	return resident.Profile{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		StudentID: body.StudentId,
		Email:     body.Email,
	}
}

func residentResponse(r *resident.Resident) servers.Resident {
	p := r.Profile()
	return servers.Resident{
		Id:        r.ID().Bytes(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		StudentId: p.StudentID,
		Email:     p.Email,
		Status:    optional(string(r.Status())),
	}
}

func residentViewsResponse(views []queries.ResidentView) []servers.Resident {
	resp := make([]servers.Resident, len(views))
	for i, v := range views {
		waiting := v.WaitingPackages
		resp[i] = servers.Resident{
			Id:              v.ID.Bytes(),
			FirstName:       v.FirstName,
			LastName:        v.LastName,
			StudentId:       v.StudentID,
			Email:           v.Email,
			WaitingPackages: &waiting,
		}
	}
	return resp
}

func invitationResponse(inv *invitation.Invitation) servers.Invitation {
	return servers.Invitation{
		Id:             inv.ID().Bytes(),
		Email:          inv.Email(),
		Role:           servers.InvitationRole(inv.Role()),
		OrganizationId: inv.OrganizationID().Bytes(),
		MailroomId:     uuidPtr(inv.MailroomID()),
		Status:         servers.InvitationStatus(inv.Status()),
		CreatedAt:      inv.CreatedAt(),
		ExpiresAt:      inv.ExpiresAt(),
	}
}
