package models

// BackupVersion is written into every exported backup.
const BackupVersion = "1.0"

// Backup is the full export document.
type Backup struct {
	Transactions []Transaction `json:"transactions"`
	Goals        []Goal        `json:"goals"`
	ExportedAt   string        `json:"exportedAt"`
	Version      string        `json:"version"`
}
