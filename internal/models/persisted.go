package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RowSnapshot is a cached copy of a sheet read, served when the spreadsheet
// service is unreachable. Payload is the gzip-compressed JSON of the table.
type RowSnapshot struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Sheet    string    `gorm:"type:varchar(100);not null;index" json:"sheet"`
	Payload  []byte    `gorm:"type:bytea;not null" json:"-"`
	RowCount int       `gorm:"not null" json:"row_count"`
	TakenAt  time.Time `gorm:"not null;index" json:"taken_at"`
}

// BeforeCreate hook for RowSnapshot
func (s *RowSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.TakenAt.IsZero() {
		s.TakenAt = time.Now()
	}
	return nil
}

// TableName returns the table name for RowSnapshot
func (s *RowSnapshot) TableName() string {
	return "row_snapshots"
}

// BudgetRecord persists a category budget's pay-period base amount.
type BudgetRecord struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Category   string          `gorm:"type:varchar(100);not null;uniqueIndex" json:"category"`
	BaseAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"base_amount"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for BudgetRecord
func (b *BudgetRecord) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for BudgetRecord
func (b *BudgetRecord) TableName() string {
	return "budget_records"
}

// ToBudget converts the stored record to the domain type.
func (b *BudgetRecord) ToBudget() Budget {
	return Budget{Category: b.Category, BaseAmount: b.BaseAmount}
}

// MerchantOverride pins a raw merchant string to a group name so a flushed
// edit survives re-imports that resurrect the raw value.
type MerchantOverride struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RawName   string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"raw_name"`
	GroupName string    `gorm:"type:varchar(255);not null" json:"group_name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for MerchantOverride
func (m *MerchantOverride) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for MerchantOverride
func (m *MerchantOverride) TableName() string {
	return "merchant_overrides"
}

// Setting is one key-value application setting. Sealed rows hold secrets
// encrypted by the settings service; Value is then base64 ciphertext.
type Setting struct {
	Key       string    `gorm:"type:varchar(100);primary_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	Sealed    bool      `gorm:"not null;default:false" json:"sealed"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for Setting
func (s *Setting) TableName() string {
	return "settings"
}
