package services

import (
	"errors"

	"gorm.io/gorm"
)

// gormFullSave makes Save cascade into child rows (milestones, activities,
// transactions) so a recompute pass persists in one write.
var gormFullSave = gorm.Session{FullSaveAssociations: true}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
