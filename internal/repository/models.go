package repository

import "time"

type AlertRecord struct {
	ID             string    `gorm:"primaryKey;size:36"`
	TxHash         string    `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	Actor          string    `gorm:"size:42;index;not null"`       // flagged sender
	Severity       string    `gorm:"size:16;not null"`
	Category       string    `gorm:"size:32;not null"`
	Confidence     uint8     `gorm:"not null"`
	CompositeScore uint8     `gorm:"not null"`
	Description    string    `gorm:"type:text"`
	ModelVersion   string    `gorm:"size:64"`
	EconomicImpact string    `gorm:"size:100;not null"` // wei
	RelatedAlerts  string    `gorm:"type:text"`         // comma separated tx hashes
	BlockNumber    uint64    `gorm:"not null;index"`
	Status         string    `gorm:"size:24;not null;index"`
	InclusionBlock uint64
	BroadcastHash  *string   `gorm:"size:66"`
	Reason         string    `gorm:"type:text"`
	RecordedAt     time.Time `gorm:"not null;index"`
}
