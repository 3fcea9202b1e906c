// Package queries contains the read side of the mailroom service.
//
// Query handlers bypass the aggregates and read the tables directly through
// gorm, returning flat read models shaped for the staff UI. Every query is a
// guarded value built by its constructor, the same way commands are.
//
// Example:
//
//	query, err := queries.NewGetPackagesQuery(mailroomID, []parcel.Status{parcel.Waiting}, 50)
//	if err != nil {
//	    return err
//	}
//	packages, err := queries.NewGetPackagesQueryHandler(db).Handle(ctx, query)
package queries
