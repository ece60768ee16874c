package specification

import "gorm.io/gorm"

// Specification narrows a query. Repositories apply them in order, so a
// Pagination spec should come after any ordering spec.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
