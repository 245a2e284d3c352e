package models

import (
	"gorm.io/gorm"
)

// ShopOrder is one book line item. Orders with several books are stored as
// one row per book.
type ShopOrder struct {
	gorm.Model
	EmailID  string `gorm:"index" json:"email_id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	BookName string `json:"book_name"`
	Language string `json:"language"`
}
