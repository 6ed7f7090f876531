// Package schema declares the fixed table graph: which tables exist, which
// tables they reference, and the order in which rows may be safely deleted
// or created. The orders are hand-derived from the foreign-key edges below;
// any change to the model relationships requires re-deriving them.
package schema

import "github.com/anjiri1684/tutor_market_seeder/models"

// Table identifies one physical table.
type Table string

const (
	TableCity          Table = "cities"
	TableSubject       Table = "subjects"
	TableTeachingLevel Table = "teaching_levels"
	TableUser          Table = "users"
	TableStudent       Table = "students"
	TableTutor         Table = "tutors"
	TableTutorSubject  Table = "tutor_subjects"
	TableSchedule      Table = "schedules"
	TableBooking       Table = "bookings"
	TablePayment       Table = "payments"
	TableReview        Table = "reviews"
)

// DeletionOrder lists every table child-first: a table always precedes the
// tables it references, so deleting in this sequence never strands a
// foreign key.
var DeletionOrder = []Table{
	TableReview,
	TablePayment,
	TableBooking,
	TableSchedule,
	TableTutorSubject,
	TableStudent,
	TableTutor,
	TableUser,
	TableCity,
	TableSubject,
	TableTeachingLevel,
}

// Parents maps each table to the tables it holds foreign keys into.
var Parents = map[Table][]Table{
	TableCity:          {},
	TableSubject:       {},
	TableTeachingLevel: {},
	TableUser:          {},
	TableStudent:       {TableUser, TableCity},
	TableTutor:         {TableUser, TableCity},
	TableTutorSubject:  {TableTutor, TableSubject, TableTeachingLevel},
	TableSchedule:      {TableTutor},
	TableBooking:       {TableStudent, TableTutorSubject, TableSchedule},
	TablePayment:       {TableBooking},
	TableReview:        {TableBooking},
}

// CreationOrder is the exact reverse of DeletionOrder: parents first.
func CreationOrder() []Table {
	order := make([]Table, len(DeletionOrder))
	for i, t := range DeletionOrder {
		order[len(DeletionOrder)-1-i] = t
	}
	return order
}

// Model dispatches a table tag to a fresh model pointer for that table.
// Returns nil for an unknown tag.
func (t Table) Model() any {
	switch t {
	case TableCity:
		return &models.City{}
	case TableSubject:
		return &models.Subject{}
	case TableTeachingLevel:
		return &models.TeachingLevel{}
	case TableUser:
		return &models.User{}
	case TableStudent:
		return &models.Student{}
	case TableTutor:
		return &models.Tutor{}
	case TableTutorSubject:
		return &models.TutorSubject{}
	case TableSchedule:
		return &models.Schedule{}
	case TableBooking:
		return &models.Booking{}
	case TablePayment:
		return &models.Payment{}
	case TableReview:
		return &models.Review{}
	}
	return nil
}
