// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"time"

	"github.com/google/uuid"
)

// dateLayout is the accepted request date format.
const dateLayout = "2006-01-02"

// parseDate parses a request date into midnight UTC.
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// parseUUIDs parses a list of UUID strings, failing on the first invalid one.
func parseUUIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
