package mysql

import (
	"database/sql"
	"fmt"
	"time"

	// Import the MySQL driver (SingleStore speaks the MySQL wire protocol).
	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"github.com/cinemind/cinechat/internal/profile"
	"github.com/cinemind/cinechat/store"
)

type DB struct {
	db      *sql.DB
	profile *profile.Profile
}

// NewDB opens a connection pool to the SingleStore catalog database.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile == nil {
		return nil, errors.New("profile is nil")
	}
	if profile.DBHost == "" || profile.DBUser == "" || profile.DBName == "" {
		return nil, errors.New("catalog connection parameters are incomplete: host, user and database are required")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		profile.DBUser, profile.DBPassword, profile.DBHost, profile.DBPort, profile.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", profile.DBName)
	}

	// Small pool: the service holds one shared handle and the workload is a
	// single chat flow per request.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(2 * time.Hour)
	db.SetConnMaxIdleTime(15 * time.Minute)

	// Verify the connection is working before returning.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return &DB{
		db:      db,
		profile: profile,
	}, nil
}

func (d *DB) GetDB() *sql.DB {
	return d.db
}

func (d *DB) Close() error {
	return d.db.Close()
}
