package db

import (
	"github.com/pkg/errors"

	"github.com/cinemind/cinechat/internal/profile"
	"github.com/cinemind/cinechat/store"
	"github.com/cinemind/cinechat/store/db/mysql"
)

// NewDriver creates a new catalog db driver based on the profile.
//
// The movie catalog lives in SingleStore, which speaks the MySQL wire
// protocol, so "singlestore" and "mysql" are the same driver. Other engines
// are not supported.
func NewDriver(profile *profile.Profile) (store.Driver, error) {
	driver, err := mysql.NewDB(profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create db driver")
	}
	return driver, nil
}
