package services

import (
	"testing"
	"time"

	"github.com/AnshRaj112/exercise-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleUser() *models.User {
	return &models.User{
		ID:       primitive.NewObjectID(),
		Username: "alice",
		Count:    5,
		Log: []models.Entry{
			{Description: "c", Duration: models.DurationOf(30), Date: day(2024, 1, 3)},
			{Description: "a", Duration: models.DurationOf(10), Date: day(2024, 1, 1)},
			{Description: "e", Date: day(2024, 1, 5)},
			{Description: "b", Duration: models.DurationOf(20), Date: day(2024, 1, 2)},
			{Description: "d", Duration: models.DurationOf(40), Date: day(2024, 1, 4).Add(15 * time.Hour)},
		},
	}
}

func descriptions(r LogResult) []string {
	out := make([]string, 0, len(r.Log))
	for _, e := range r.Log {
		out = append(out, e.Description)
	}
	return out
}

func TestParseLogQueryDefaults(t *testing.T) {
	q := ParseLogQuery("", "", "")
	assert.Equal(t, MinDate, q.From)
	assert.Equal(t, MaxDate, q.To)
	assert.Equal(t, DefaultLogLimit, q.Limit)
	assert.False(t, q.HasFrom || q.HasTo || q.HasLimit)

	q = ParseLogQuery("soon", "later", "ten")
	assert.Equal(t, MinDate, q.From)
	assert.Equal(t, MaxDate, q.To)
	assert.Equal(t, DefaultLogLimit, q.Limit)
	assert.False(t, q.HasFrom || q.HasTo || q.HasLimit)

	q = ParseLogQuery("", "", "-3")
	assert.Equal(t, DefaultLogLimit, q.Limit)
	assert.False(t, q.HasLimit)

	q = ParseLogQuery("", "", "1000")
	assert.False(t, q.HasLimit)

	q = ParseLogQuery("2024-01-02", "2024-01-04", "2")
	assert.Equal(t, day(2024, 1, 2), q.From)
	assert.Equal(t, day(2024, 1, 4), q.To)
	assert.Equal(t, 2, q.Limit)
	assert.True(t, q.HasFrom && q.HasTo && q.HasLimit)
}

func TestBuildLogNoFilters(t *testing.T) {
	u := sampleUser()
	r := BuildLog(u, ParseLogQuery("", "", ""))

	assert.Equal(t, "alice", r.Username)
	assert.Equal(t, u.ID.Hex(), r.ID)
	assert.Equal(t, 5, r.Count)
	assert.Equal(t, []string{"c", "a", "e", "b", "d"}, descriptions(r))
	assert.Empty(t, r.Query)
	assert.NotNil(t, r.Query)
}

func TestBuildLogRangeKeepsStoredOrder(t *testing.T) {
	r := BuildLog(sampleUser(), ParseLogQuery("2024-01-02", "2024-01-04", ""))

	// d is later on Jan 4 than the inclusive upper bound instant.
	assert.Equal(t, []string{"c", "b"}, descriptions(r))
	assert.Equal(t, 2, r.Count)
	assert.Equal(t, map[string]any{"from": "Tue Jan 02 2024", "to": "Thu Jan 04 2024"}, r.Query)
}

func TestBuildLogInclusiveBounds(t *testing.T) {
	r := BuildLog(sampleUser(), ParseLogQuery("2024-01-01", "2024-01-01", ""))
	require.Len(t, r.Log, 1)
	assert.Equal(t, "a", r.Log[0].Description)
	assert.Equal(t, "Mon Jan 01 2024", r.Log[0].Date)
}

func TestBuildLogHeadTruncation(t *testing.T) {
	r := BuildLog(sampleUser(), ParseLogQuery("2024-01-02", "", "2"))

	assert.Equal(t, []string{"c", "e"}, descriptions(r))
	assert.Equal(t, 2, r.Count)
	assert.Equal(t, map[string]any{"from": "Tue Jan 02 2024", "limit": 2}, r.Query)
}

func TestBuildLogZeroLimit(t *testing.T) {
	r := BuildLog(sampleUser(), ParseLogQuery("", "", "0"))
	assert.Empty(t, r.Log)
	assert.NotNil(t, r.Log)
	assert.Equal(t, 0, r.Count)
	assert.Equal(t, map[string]any{"limit": 0}, r.Query)
}

func TestBuildLogRendersEntries(t *testing.T) {
	r := BuildLog(sampleUser(), ParseLogQuery("2024-01-04", "2024-01-05", ""))
	require.Len(t, r.Log, 2)

	assert.Equal(t, "Fri Jan 05 2024", r.Log[0].Date)
	_, ok := r.Log[0].Duration.Value()
	assert.False(t, ok)
	assert.Equal(t, "Thu Jan 04 2024", r.Log[1].Date)
}

func TestBuildLogDoesNotMutateUser(t *testing.T) {
	u := sampleUser()
	_ = BuildLog(u, ParseLogQuery("2024-01-02", "2024-01-03", "1"))
	assert.Len(t, u.Log, 5)
	assert.Equal(t, 5, u.Count)
}
