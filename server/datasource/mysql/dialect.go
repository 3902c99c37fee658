package mysql

import (
	"fmt"
	"net/url"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
)

// Dialect implements sql.Dialect for MySQL via go-sql-driver.
type Dialect struct{}

func (d *Dialect) DriverName() string { return "mysql" }

// BuildDSN converts a mysql:// connection URL into a driver DSN.
func (d *Dialect) BuildDSN(u *url.URL) (string, error) {
	if u.Host == "" {
		return "", fmt.Errorf("mysql URL must include a host")
	}

	cfg := mysqldriver.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr = u.Host + ":3306"
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	cfg.AllowNativePasswords = true

	if u.User != nil {
		cfg.User = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			cfg.Passwd = pw
		}
	}

	params := u.Query()
	if params.Get("parseTime") != "false" {
		cfg.ParseTime = true
	}
	if charset := params.Get("charset"); charset != "" {
		cfg.Params = map[string]string{"charset": charset}
	}

	switch strings.ToLower(params.Get("ssl-mode")) {
	case "true", "required", "require":
		cfg.TLSConfig = "true"
	case "skip-verify", "preferred":
		cfg.TLSConfig = "skip-verify"
	default:
		cfg.TLSConfig = "false"
	}

	return cfg.FormatDSN(), nil
}

// MapColumn maps go-sql-driver database type names to wire labels. The
// driver prefixes unsigned integer types with "UNSIGNED ".
func (d *Dialect) MapColumn(dbTypeName string) (string, bool, bool) {
	name := strings.ToUpper(dbTypeName)
	unsigned := strings.HasPrefix(name, "UNSIGNED ")
	name = strings.TrimPrefix(name, "UNSIGNED ")

	switch name {
	case "TINYINT":
		return intLabel("INT8", unsigned), false, unsigned
	case "SMALLINT":
		return intLabel("INT16", unsigned), false, unsigned
	case "MEDIUMINT":
		return intLabel("INT24", unsigned), false, unsigned
	case "INT":
		return intLabel("INT32", unsigned), false, unsigned
	case "BIGINT":
		return intLabel("INT64", unsigned), false, unsigned
	case "FLOAT":
		return "FLOAT32", false, false
	case "DOUBLE":
		return "FLOAT64", false, false
	case "DECIMAL":
		return "DECIMAL", false, false
	case "BINARY", "VARBINARY", "TINYBLOB", "BLOB", "MEDIUMBLOB", "LONGBLOB":
		return name, true, false
	case "BIT":
		return "BIT", true, false
	case "CHAR", "VARCHAR", "TINYTEXT", "TEXT", "MEDIUMTEXT", "LONGTEXT",
		"DATE", "TIME", "DATETIME", "TIMESTAMP", "YEAR", "JSON", "ENUM", "SET":
		return name, false, false
	default:
		return name, false, unsigned
	}
}

func intLabel(base string, unsigned bool) string {
	if unsigned {
		return "U" + base
	}
	return base
}
