package models

import "time"

// ExportJob is one row queued for the spreadsheet export worker.
type ExportJob struct {
	Roll       string    `json:"roll"`
	FullName   string    `json:"full_name"`
	VerifiedAt time.Time `json:"verified_at"`
}
