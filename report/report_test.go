package report

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/anjiri1684/tutor_market_seeder/database"
	"github.com/anjiri1684/tutor_market_seeder/models"
	"github.com/anjiri1684/tutor_market_seeder/seeder"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "report.db") + "?_pragma=foreign_keys(1)"
	db, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { database.Close(db) })
	return db
}

// captureLogger records every Info line so tests can inspect the rendered
// report.
type captureLogger struct {
	lines []string
}

func (c *captureLogger) Info(msg string) { c.lines = append(c.lines, msg) }
func (c *captureLogger) Error(err error, _ string) {}

func (c *captureLogger) output() string {
	return strings.Join(c.lines, "\n")
}

type discardLogger struct{}

func (discardLogger) Info(string) {}
func (discardLogger) Error(error, string) {}

func renderSeeded(t *testing.T, db *gorm.DB) string {
	t.Helper()
	_, err := seeder.New(db, discardLogger{}).Seed()
	require.NoError(t, err)

	log := &captureLogger{}
	require.NoError(t, New(db, log).Render())
	return log.output()
}

func TestRenderSectionsAndCounts(t *testing.T) {
	db := newTestDB(t)
	out := renderSeeded(t, db)

	assert.Contains(t, out, "Users (2):")
	assert.Contains(t, out, "Cities (3):")
	assert.Contains(t, out, "Subjects (3):")
	assert.Contains(t, out, "Teaching Levels (3):")
	assert.Contains(t, out, "Tutors (1):")
	assert.Contains(t, out, "Bookings (1):")
}

func TestRenderRecordLines(t *testing.T) {
	db := newTestDB(t)
	out := renderSeeded(t, db)

	assert.Contains(t, out, "(student) - student@test.com")
	assert.Contains(t, out, "(tutor) - tutor@test.com")
	assert.Contains(t, out, "  City A, Country A")
	assert.Contains(t, out, "  Subject A (Category A)")
	assert.Contains(t, out, "- 350.00/hour")
	assert.Contains(t, out, "Booking #1 (confirmed)")
	assert.Contains(t, out, "Format: online")
	assert.Contains(t, out, "Payment: 350.00 (success)")
	assert.Contains(t, out, "Review: 5/5")
}

func TestTeachingLevelsOrderedByPosition(t *testing.T) {
	db := newTestDB(t)
	out := renderSeeded(t, db)

	first := strings.Index(out, "  1. ")
	second := strings.Index(out, "  2. ")
	third := strings.Index(out, "  3. ")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, third)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestRenderPlaceholdersForAbsentRelations(t *testing.T) {
	db := newTestDB(t)

	g, err := seeder.New(db, discardLogger{}).Seed()
	require.NoError(t, err)

	// Strip the optional relations: payment, review, and the tutor's city.
	require.NoError(t, db.Delete(&models.Payment{}, g.Payment.ID).Error)
	require.NoError(t, db.Delete(&models.Review{}, g.Review.ID).Error)
	require.NoError(t, db.Model(&models.Tutor{}).Where("id = ?", g.Tutor.ID).
		Update("city_id", nil).Error)

	log := &captureLogger{}
	require.NoError(t, New(db, log).Render())
	out := log.output()

	assert.Contains(t, out, "Payment: N/A")
	assert.Contains(t, out, "Review: N/A")
	assert.Contains(t, out, "City: N/A")
}

func TestRenderIsDeterministicAcrossReseeds(t *testing.T) {
	db := newTestDB(t)
	s := seeder.New(db, discardLogger{})

	run := func() string {
		_, err := s.Reset()
		require.NoError(t, err)
		_, err = s.Seed()
		require.NoError(t, err)

		log := &captureLogger{}
		require.NoError(t, New(db, log).Render())
		return log.output()
	}

	assert.Equal(t, run(), run())
}
