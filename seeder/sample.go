package seeder

import (
	"time"

	"github.com/anjiri1684/tutor_market_seeder/models"
)

// Fixed sample dataset. Values are deliberately hard-coded so every run
// produces the same graph.

const (
	sampleStudentPassword = "student-secret"
	sampleTutorPassword   = "tutor-secret"
)

func sampleCities() []models.City {
	return []models.City{
		{Name: "City A", Country: "Country A"},
		{Name: "City B", Country: "Country B"},
		{Name: "City C", Country: "Country C"},
	}
}

func sampleSubjects() []models.Subject {
	return []models.Subject{
		{Name: "Subject A", Category: "Category A"},
		{Name: "Subject B", Category: "Category B"},
		{Name: "Subject C", Category: "Category C"},
	}
}

func sampleTeachingLevels() []models.TeachingLevel {
	return []models.TeachingLevel{
		{Name: "Primary school (grades 1-4)", Position: 1},
		{Name: "Middle school (grades 5-9)", Position: 2},
		{Name: "High school (grades 10-11)", Position: 3},
	}
}

func sampleStudentUser(passwordHash string) models.User {
	return models.User{
		FirstName:    "Alice",
		LastName:     "Anderson",
		Email:        "student@test.com",
		PasswordHash: passwordHash,
		Phone:        "+12025550123",
		Role:         models.RoleStudent,
		DateOfBirth:  time.Date(2005, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

func sampleTutorUser(passwordHash string) models.User {
	return models.User{
		FirstName:    "Tom",
		LastName:     "Novak",
		Email:        "tutor@test.com",
		PasswordHash: passwordHash,
		Phone:        "+12025550198",
		Role:         models.RoleTutor,
		DateOfBirth:  time.Date(1990, time.July, 20, 0, 0, 0, 0, time.UTC),
	}
}

// sampleSchedule is a single one-hour slot.
func sampleSchedule(tutorID uint) models.Schedule {
	return models.Schedule{
		TutorID:   tutorID,
		Date:      time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC),
		StartTime: time.Date(2025, time.December, 15, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, time.December, 15, 15, 0, 0, 0, time.UTC),
	}
}
