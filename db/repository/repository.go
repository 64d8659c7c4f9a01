package repository

import "github.com/jmoiron/sqlx"

// DBRepository owns all access to the account and api_keys tables.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{
		db: db,
	}
}
