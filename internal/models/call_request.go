// internal/models/call_request.go
package models

// CallRequest is submitted from the public contact modal. Rows are only
// ever inserted and listed, never updated.
type CallRequest struct {
	BaseModel
	Name  string `json:"name" gorm:"size:255;not null"`
	Phone string `json:"phone" gorm:"size:20;not null"`
	Email string `json:"email" gorm:"size:255"`
}
