package persistence

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// nextReferenceSequence returns the next unused sequence number for
// project-scoped references shaped like EW-001. The highest reference on
// record drives the result, so a sequence issued to a since-deleted row is
// never reissued. Zero-padded references sort lexicographically within a
// length; ordering by length first keeps EW-1000 above EW-999.
func nextReferenceSequence(dbQuery *gorm.DB, projectID string) (int, error) {
	var references []string
	err := dbQuery.Where("project_id = ?", projectID).
		Order("length(reference) DESC, reference DESC").
		Limit(1).
		Pluck("reference", &references).Error
	if err != nil {
		return 0, fmt.Errorf("failed to fetch latest reference: %w", err)
	}
	if len(references) == 0 {
		return 1, nil
	}

	latest := references[0]
	separator := strings.LastIndex(latest, "-")
	if separator < 0 {
		return 0, fmt.Errorf("malformed reference %q", latest)
	}

	sequence, err := strconv.Atoi(latest[separator+1:])
	if err != nil {
		return 0, fmt.Errorf("malformed reference %q: %w", latest, err)
	}
	return sequence + 1, nil
}
