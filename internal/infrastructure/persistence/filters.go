package persistence

import (
	"fmt"

	"gorm.io/gorm"
)

// applyFilters adds equality conditions for a filter set. Column names
// must already be validated against the entity's filter spec.
func applyFilters(db *gorm.DB, filters map[string]interface{}) *gorm.DB {
	for column, value := range filters {
		db = db.Where(fmt.Sprintf("%s = ?", column), value)
	}
	return db
}

// sanitizeUpdate strips the columns a PATCH may never touch.
func sanitizeUpdate(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if k == "id" || k == "created_at" {
			continue
		}
		out[k] = v
	}
	return out
}
