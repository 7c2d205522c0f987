package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a customer email is already registered
	ErrDuplicateEmail = errors.New("email already registered")
)

// translate maps gorm errors onto the service sentinel errors
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}

// listPage fetches one offset/limit window of T in primary key order plus the total count.
// Both statements run on a handle scoped to ctx.
func listPage[T any](ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB, skip, limit int) ([]T, int64, error) {
	var model T
	base := db.WithContext(ctx).Model(&model)
	if scope != nil {
		base = scope(base)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting %T: %w", model, err)
	}

	items := []T{}
	if err := base.Session(&gorm.Session{}).Order("id ASC").Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("listing %T: %w", model, err)
	}
	return items, total, nil
}

// deleteAll removes every row of T, returning how many were removed
func deleteAll[T any](ctx context.Context, db *gorm.DB) (int64, error) {
	var model T
	result := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model)
	return result.RowsAffected, result.Error
}
