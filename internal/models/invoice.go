package models

import "time"

// Invoice is the metadata row for an uploaded invoice PDF attached to an
// expense, optionally linked to a person. An expense can have several
// invoices.
type Invoice struct {
	Base
	ExpenseID        uint      `gorm:"not null;index" json:"expense_id"`
	PersonID         *uint     `json:"person_id,omitempty"`
	Filename         string    `gorm:"not null" json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	FilePath         string    `gorm:"not null" json:"file_path"`
	FileSize         int64     `json:"file_size"`
	MimeType         string    `json:"mime_type"`
	UploadDate       time.Time `json:"upload_date"`
}
