// Package snapshot persists the entire AppState as a single JSON document
// under one fixed storage key. There is no per-entity schema: the document is
// read wholesale at startup and overwritten wholesale after every mutation,
// mirroring the single-slot browser storage the original client used.
package snapshot

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// storageKey matches the key the original browser client stored its state
// under, so the slot stays recognizable across implementations.
const storageKey = "spendwiseAppState"

// Record is the storage row holding one serialized AppState document.
type Record struct {
	Key       string `gorm:"primaryKey"`
	Document  string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the GORM default.
func (Record) TableName() string { return "app_snapshots" }

// Store reads and writes AppState snapshots under the fixed storage key.
type Store struct {
	db *gorm.DB
}

// NewStore creates a snapshot store on the given database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load returns the stored AppState, or nil when no prior snapshot exists.
// Date-bearing fields come back as true calendar dates: models.Date handles
// both ISO-8601 date strings and the RFC3339 timestamps older snapshots carry.
func (s *Store) Load() (*models.AppState, error) {
	var rec Record
	err := s.db.Where("key = ?", storageKey).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSnapshotLoad, err)
	}

	var state models.AppState
	if err := json.Unmarshal([]byte(rec.Document), &state); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSnapshotLoad, err)
	}
	return &state, nil
}

// Save serializes the state and overwrites the snapshot slot.
func (s *Store) Save(state models.AppState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrSnapshotSave, err)
	}

	rec := Record{
		Key:       storageKey,
		Document:  string(doc),
		UpdatedAt: time.Now().UTC(),
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrSnapshotSave, err)
	}
	return nil
}
