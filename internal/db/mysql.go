package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance. TranslateError is on so
// unique-key violations surface as gorm.ErrDuplicatedKey; the duplicate-vote
// and duplicate-email conflicts depend on that signal coming from the
// storage constraint, not from application-level checks.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
