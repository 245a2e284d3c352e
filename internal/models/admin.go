package models

import (
	"gorm.io/gorm"
)

// ControlTypeModerator grants edit and delete rights over all
// registrations; any other control type is view-only.
const ControlTypeModerator = "Q"

type Admin struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex" json:"email"`
	ControlType string `json:"control_type"`
}
