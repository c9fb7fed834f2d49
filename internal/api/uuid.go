package api

import (
	"github.com/google/uuid"
)

// uuidType is an alias so handler files don't import uuid directly.
type uuidType = uuid.UUID

// parseReportID parses the {reportID} URL parameter.
func parseReportID(s string) (uuidType, error) {
	return uuid.Parse(s)
}
