package models

// CreditCardStatement is the metadata row for an uploaded statement PDF.
// The file on disk is a side-car to the row; both are deleted together.
type CreditCardStatement struct {
	Base
	PaymentMethodID      uint   `gorm:"not null;index" json:"payment_method_id"`
	StatementDate        string `gorm:"not null" json:"statement_date"`
	StatementPeriodStart string `json:"statement_period_start"`
	StatementPeriodEnd   string `json:"statement_period_end"`
	Filename             string `gorm:"not null" json:"filename"`
	OriginalFilename     string `json:"original_filename"`
	FilePath             string `gorm:"not null" json:"file_path"`
	FileSize             int64  `json:"file_size"`
	MimeType             string `json:"mime_type"`
}
