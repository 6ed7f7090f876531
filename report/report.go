// Package report reads the seeded graph back out of the store and renders
// it as nested, human-readable text through the logger. Output is flushed
// per section, so sections rendered before a later query failure remain
// visible.
package report

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/anjiri1684/tutor_market_seeder/database"
	"github.com/anjiri1684/tutor_market_seeder/logger"
	"github.com/anjiri1684/tutor_market_seeder/models"
	"github.com/anjiri1684/tutor_market_seeder/schema"
)

const placeholder = "N/A"

type Renderer struct {
	db  *gorm.DB
	log logger.Logger
}

func New(db *gorm.DB, log logger.Logger) *Renderer {
	return &Renderer{db: db, log: log}
}

// Render emits every section in a fixed sequence. Teaching levels are
// sorted by position; every other section uses the store's default order,
// which is implementation-defined.
func (r *Renderer) Render() error {
	r.log.Info("")

	if err := r.usersSection(); err != nil {
		return err
	}
	if err := r.citiesSection(); err != nil {
		return err
	}
	if err := r.subjectsSection(); err != nil {
		return err
	}
	if err := r.teachingLevelsSection(); err != nil {
		return err
	}
	if err := r.tutorsSection(); err != nil {
		return err
	}
	return r.bookingsSection()
}

// renderSection logs a header with the record count, one indented line per
// entry, then a separating blank line.
func (r *Renderer) renderSection(title string, count int, lines []string) {
	r.log.Info(fmt.Sprintf("%s (%d):", title, count))
	for _, line := range lines {
		r.log.Info("  " + line)
	}
	r.log.Info("")
}

func (r *Renderer) usersSection() error {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return database.QueryError(string(schema.TableUser), err)
	}
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, formatUser(u))
	}
	r.renderSection("Users", len(users), lines)
	return nil
}

func (r *Renderer) citiesSection() error {
	var cities []models.City
	if err := r.db.Find(&cities).Error; err != nil {
		return database.QueryError(string(schema.TableCity), err)
	}
	lines := make([]string, 0, len(cities))
	for _, c := range cities {
		lines = append(lines, fmt.Sprintf("%s, %s", c.Name, c.Country))
	}
	r.renderSection("Cities", len(cities), lines)
	return nil
}

func (r *Renderer) subjectsSection() error {
	var subjects []models.Subject
	if err := r.db.Find(&subjects).Error; err != nil {
		return database.QueryError(string(schema.TableSubject), err)
	}
	lines := make([]string, 0, len(subjects))
	for _, s := range subjects {
		lines = append(lines, fmt.Sprintf("%s (%s)", s.Name, s.Category))
	}
	r.renderSection("Subjects", len(subjects), lines)
	return nil
}

func (r *Renderer) teachingLevelsSection() error {
	var levels []models.TeachingLevel
	if err := r.db.Order("position asc").Find(&levels).Error; err != nil {
		return database.QueryError(string(schema.TableTeachingLevel), err)
	}
	lines := make([]string, 0, len(levels))
	for _, l := range levels {
		lines = append(lines, fmt.Sprintf("%d. %s", l.Position, l.Name))
	}
	r.renderSection("Teaching Levels", len(levels), lines)
	return nil
}

func (r *Renderer) tutorsSection() error {
	var tutors []models.Tutor
	err := r.db.
		Preload("User").
		Preload("City").
		Preload("Subjects.Subject").
		Preload("Subjects.TeachingLevel").
		Find(&tutors).Error
	if err != nil {
		return database.QueryError(string(schema.TableTutor), err)
	}
	var lines []string
	for _, t := range tutors {
		lines = append(lines, formatTutor(t)...)
	}
	r.renderSection("Tutors", len(tutors), lines)
	return nil
}

func (r *Renderer) bookingsSection() error {
	var bookings []models.Booking
	err := r.db.
		Preload("Student.User").
		Preload("Student.City").
		Preload("TutorSubject.Tutor.User").
		Preload("TutorSubject.Subject").
		Preload("TutorSubject.TeachingLevel").
		Preload("Schedule").
		Preload("Payment").
		Preload("Review").
		Find(&bookings).Error
	if err != nil {
		return database.QueryError(string(schema.TableBooking), err)
	}
	var lines []string
	for i, b := range bookings {
		lines = append(lines, formatBooking(i+1, b)...)
	}
	r.renderSection("Bookings", len(bookings), lines)
	return nil
}

func formatUser(u models.User) string {
	return fmt.Sprintf("%s %s (%s) - %s", u.FirstName, u.LastName, u.Role, u.Email)
}

func formatTutor(t models.Tutor) []string {
	lines := []string{
		fmt.Sprintf("%s %s (%d years)", t.User.FirstName, t.User.LastName, t.YearsExperience),
		fmt.Sprintf("  City: %s", cityName(t.City)),
		"  Subjects:",
	}
	for _, ts := range t.Subjects {
		lines = append(lines, fmt.Sprintf("    - %s (%s) - %.2f/hour",
			ts.Subject.Name, ts.TeachingLevel.Name, ts.HourlyRate))
	}
	return lines
}

// formatBooking numbers bookings by their position in the result set, not
// their raw id, so repeated reseed runs report identically.
func formatBooking(position int, b models.Booking) []string {
	lines := []string{
		fmt.Sprintf("Booking #%d (%s)", position, b.Status),
		fmt.Sprintf("  Student: %s %s from %s",
			b.Student.User.FirstName, b.Student.User.LastName, cityName(b.Student.City)),
		fmt.Sprintf("  Tutor: %s %s",
			b.TutorSubject.Tutor.User.FirstName, b.TutorSubject.Tutor.User.LastName),
		fmt.Sprintf("  Subject: %s (%s)",
			b.TutorSubject.Subject.Name, b.TutorSubject.TeachingLevel.Name),
		fmt.Sprintf("  Schedule: %s", b.Schedule.Date.Format("2006-01-02")),
		fmt.Sprintf("  Format: %s", b.Format),
	}
	if b.Payment != nil {
		lines = append(lines, fmt.Sprintf("  Payment: %.2f (%s)", b.Payment.Amount, b.Payment.Status))
	} else {
		lines = append(lines, "  Payment: "+placeholder)
	}
	if b.Review != nil {
		lines = append(lines, fmt.Sprintf("  Review: %d/5 - %q", b.Review.Rating, b.Review.Comment))
	} else {
		lines = append(lines, "  Review: "+placeholder)
	}
	return lines
}

func cityName(c *models.City) string {
	if c == nil {
		return placeholder
	}
	return c.Name
}
