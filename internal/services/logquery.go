package services

import (
	"strconv"
	"time"

	"github.com/AnshRaj112/exercise-tracker/internal/models"
)

// DefaultLogLimit caps a log query when no usable limit is given.
const DefaultLogLimit = 1000

// LogQuery is a parsed set of log filters. The Has* flags record which
// parameters were supplied with a non-default value.
type LogQuery struct {
	From  time.Time
	To    time.Time
	Limit int

	HasFrom  bool
	HasTo    bool
	HasLimit bool
}

// ParseLogQuery applies the defaulting rules to raw from/to/limit values.
// Unparseable dates open the bound; a non-integer or negative limit is the default.
func ParseLogQuery(from, to, limit string) LogQuery {
	q := LogQuery{From: MinDate, To: MaxDate, Limit: DefaultLogLimit}

	if t, ok := ParseDate(from); ok {
		q.From, q.HasFrom = t, true
	}
	if t, ok := ParseDate(to); ok {
		q.To, q.HasTo = t, true
	}
	if n, err := strconv.Atoi(limit); err == nil && n >= 0 && n != DefaultLogLimit {
		q.Limit, q.HasLimit = n, true
	}
	return q
}

// LogEntry is an entry as returned by a log query.
type LogEntry struct {
	Description string          `json:"description"`
	Duration    models.Duration `json:"duration"`
	Date        string          `json:"date"`
}

// LogResult is the response document of a log query. Count is the number of
// returned entries, not the user's lifetime count.
type LogResult struct {
	Username string         `json:"username"`
	ID       string         `json:"_id"`
	Count    int            `json:"count"`
	Log      []LogEntry     `json:"log"`
	Query    map[string]any `json:"query"`
}

// BuildLog filters u's log to [q.From, q.To] in stored order, keeps the first
// q.Limit matches and renders them. It does not modify u.
func BuildLog(u *models.User, q LogQuery) LogResult {
	entries := make([]LogEntry, 0)
	for _, e := range u.Log {
		if len(entries) >= q.Limit {
			break
		}
		if e.Date.Before(q.From) || e.Date.After(q.To) {
			continue
		}
		entries = append(entries, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        FormatDate(e.Date),
		})
	}

	echo := map[string]any{}
	if q.HasFrom {
		echo["from"] = FormatDate(q.From)
	}
	if q.HasTo {
		echo["to"] = FormatDate(q.To)
	}
	if q.HasLimit {
		echo["limit"] = q.Limit
	}

	return LogResult{
		Username: u.Username,
		ID:       u.ID.Hex(),
		Count:    len(entries),
		Log:      entries,
		Query:    echo,
	}
}
