package database

import (
	"fmt"
	"strings"
	"time"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverMemory   Driver = "memory"
)

func ParseDriver(v string) (Driver, error) {
	switch d := Driver(strings.ToLower(strings.TrimSpace(v))); d {
	case DriverSQLite, DriverPostgres, DriverMemory:
		return d, nil
	default:
		return "", fmt.Errorf("invalid DB_DRIVER %q: valid values are %s, %s, %s", v, DriverSQLite, DriverPostgres, DriverMemory)
	}
}

// SQL reports whether the driver is backed by database/sql.
func (d Driver) SQL() bool {
	return d == DriverSQLite || d == DriverPostgres
}

type Config struct {
	Driver           Driver
	URL              string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
	AutoMigrate      bool
	BinaryParameters bool
}

// DSN returns the connection string handed to the sql driver.
func (c Config) DSN() string {
	switch c.Driver {
	case DriverSQLite:
		return sqliteDSN(c.URL)
	case DriverPostgres:
		return normalizePostgresURL(c.URL, c.BinaryParameters)
	default:
		return c.URL
	}
}
