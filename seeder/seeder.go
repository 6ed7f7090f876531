// Package seeder wipes the store and repopulates it with the fixed sample
// dataset, always in dependency-safe order.
package seeder

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/anjiri1684/tutor_market_seeder/database"
	"github.com/anjiri1684/tutor_market_seeder/logger"
	"github.com/anjiri1684/tutor_market_seeder/models"
	"github.com/anjiri1684/tutor_market_seeder/schema"
)

type Seeder struct {
	db  *gorm.DB
	log logger.Logger
}

func New(db *gorm.DB, log logger.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

// SampleGraph holds every record created by Seed, so callers can reach all
// generated keys. Sibling slices keep creation order: Cities[0] is the
// shared city, Subjects[0] the taught subject, Levels[1] the taught level.
type SampleGraph struct {
	Cities   []models.City
	Subjects []models.Subject
	Levels   []models.TeachingLevel

	StudentUser models.User
	Student     models.Student
	TutorUser   models.User
	Tutor       models.Tutor

	TutorSubject models.TutorSubject
	Schedule     models.Schedule
	Booking      models.Booking
	Payment      models.Payment
	Review       models.Review
}

// Reset deletes every row of every table, children before parents, and
// returns the total number of rows removed. The deletion sequence is
// strictly sequential; a blocked delete aborts the reset where it stands.
func (s *Seeder) Reset() (int64, error) {
	var total int64
	for _, table := range schema.DeletionOrder {
		n, err := s.clearTable(table)
		if err != nil {
			return total, err
		}
		s.log.Info(fmt.Sprintf("cleared %s (%d rows)", table, n))
		total += n
	}
	return total, nil
}

func (s *Seeder) clearTable(table schema.Table) (int64, error) {
	res := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table.Model())
	if res.Error != nil {
		return 0, database.DeleteError(string(table), res.Error)
	}
	return res.RowsAffected, nil
}

// Seed creates the sample dataset in dependency order. Every cross-entity
// reference uses the key generated by the parent's own create; nothing is
// guessed or hard-coded. A constraint violation aborts immediately and the
// caller is expected to Reset before retrying.
func (s *Seeder) Seed() (*SampleGraph, error) {
	g := &SampleGraph{
		Cities:   sampleCities(),
		Subjects: sampleSubjects(),
		Levels:   sampleTeachingLevels(),
	}

	if err := s.create(schema.TableCity, &g.Cities); err != nil {
		return nil, err
	}
	if err := s.create(schema.TableSubject, &g.Subjects); err != nil {
		return nil, err
	}
	if err := s.create(schema.TableTeachingLevel, &g.Levels); err != nil {
		return nil, err
	}
	s.log.Info(fmt.Sprintf("seeded %d cities, %d subjects, %d teaching levels",
		len(g.Cities), len(g.Subjects), len(g.Levels)))

	sharedCityID := g.Cities[0].ID

	studentHash, err := hashPassword(sampleStudentPassword)
	if err != nil {
		return nil, err
	}
	g.StudentUser = sampleStudentUser(studentHash)
	if err := s.create(schema.TableUser, &g.StudentUser); err != nil {
		return nil, err
	}
	g.Student = models.Student{
		UserID:      g.StudentUser.ID,
		CityID:      &sharedCityID,
		SchoolGrade: 10,
	}
	if err := s.create(schema.TableStudent, &g.Student); err != nil {
		return nil, err
	}

	tutorHash, err := hashPassword(sampleTutorPassword)
	if err != nil {
		return nil, err
	}
	g.TutorUser = sampleTutorUser(tutorHash)
	if err := s.create(schema.TableUser, &g.TutorUser); err != nil {
		return nil, err
	}
	g.Tutor = models.Tutor{
		UserID:          g.TutorUser.ID,
		CityID:          &sharedCityID,
		YearsExperience: 5,
		Education:       "State University, MSc in Mathematics",
		AboutMe:         "Experienced tutor in mathematics and physics",
		Address:         "1 Main Street",
	}
	if err := s.create(schema.TableTutor, &g.Tutor); err != nil {
		return nil, err
	}
	s.log.Info("seeded student and tutor profiles")

	g.TutorSubject = models.TutorSubject{
		TutorID:    g.Tutor.ID,
		SubjectID:  g.Subjects[0].ID,
		LevelID:    g.Levels[1].ID,
		HourlyRate: 350.00,
	}
	if err := s.create(schema.TableTutorSubject, &g.TutorSubject); err != nil {
		return nil, err
	}

	g.Schedule = sampleSchedule(g.Tutor.ID)
	if err := s.create(schema.TableSchedule, &g.Schedule); err != nil {
		return nil, err
	}

	g.Booking = models.Booking{
		StudentID:      g.Student.ID,
		TutorSubjectID: g.TutorSubject.ID,
		ScheduleID:     g.Schedule.ID,
		Format:         models.BookingFormatOnline,
		Status:         models.BookingStatusConfirmed,
	}
	if err := s.create(schema.TableBooking, &g.Booking); err != nil {
		return nil, err
	}

	g.Payment = models.Payment{
		BookingID: g.Booking.ID,
		Amount:    350.00,
		Status:    models.PaymentStatusSuccess,
	}
	if err := s.create(schema.TablePayment, &g.Payment); err != nil {
		return nil, err
	}
	g.Review = models.Review{
		BookingID: g.Booking.ID,
		Rating:    5,
		Comment:   "Great tutor, explains everything clearly.",
	}
	if err := s.create(schema.TableReview, &g.Review); err != nil {
		return nil, err
	}
	s.log.Info("seeded booking with payment and review")

	return g, nil
}

func (s *Seeder) create(table schema.Table, value any) error {
	if err := s.db.Create(value).Error; err != nil {
		return database.CreateError(string(table), err)
	}
	return nil
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
