package repository

import (
	"github.com/dhruv0307t-del/ERP-Farm/internal/tenant"

	"gorm.io/gorm"
)

// farmScoped restricts a query over animals (or anything joined to animals)
// to the requester's visibility. Full-visibility scopes are a no-op.
func farmScoped(sc tenant.Scope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if sc.All() {
			return db
		}
		return db.Where("animals.farm_id = ?", *sc.FarmID)
	}
}
