package autouser

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	mssql "github.com/microsoft/go-mssqldb"
	"golang.org/x/net/proxy"
)

// OpenSocks5DB dials a database from a URI-style dsn, routing the
// connection through the SOCKS5 proxy named by the SQL_SOCKS
// environment variable when it is set. dsn schemes: "sqlserver://" for
// SQL Server, "postgres://" (or "postgresql://") for Postgres.
func OpenSocks5DB(dsn string) (*sql.DB, error) {
	switch {
	case strings.HasPrefix(dsn, "sqlserver://"):
		connector, err := mssql.NewConnector(dsn)
		if err != nil {
			return nil, err
		}
		if addr := os.Getenv("SQL_SOCKS"); addr != "" {
			dialer, err := proxy.SOCKS5("tcp", addr, nil, nil)
			if err != nil {
				return nil, fmt.Errorf("could not connect with SOCKS5 to %s: %w", addr, err)
			}
			connector.Dialer = dialer.(proxy.ContextDialer)
		}
		return sql.OpenDB(connector), nil

	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		config, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, err
		}
		if addr := os.Getenv("SQL_SOCKS"); addr != "" {
			dialer, err := proxy.SOCKS5("tcp", addr, nil, nil)
			if err != nil {
				return nil, fmt.Errorf("could not connect with SOCKS5 to %s: %w", addr, err)
			}
			contextDialer := dialer.(proxy.ContextDialer)
			config.DialFunc = contextDialer.DialContext
		}
		return stdlib.OpenDB(*config), nil

	default:
		return nil, errors.New("expected a URI-style dsn; sqlserver:// or postgres://")
	}
}

// SQLDirectory answers Directory lookups against an identity table
// instead of the host's NSS-configured user database. This restores a
// deployment shape the original module never offered — gateways that
// keep their user inventory in a managed database rather than local
// system accounts — using the same two SQL drivers and SOCKS5 dialing
// pattern wired elsewhere in this codebase's ancestry for deploying SQL
// objects, repurposed here to read one.
//
// The backing table is expected to expose the columns: name, passwd,
// gecos, dir, shell, uid, gid.
type SQLDirectory struct {
	DB        *sql.DB
	TableName string
}

// NewSQLDirectory opens dsn (see OpenSocks5DB) and returns a
// SQLDirectory reading from table.
func NewSQLDirectory(dsn, table string) (*SQLDirectory, error) {
	db, err := OpenSocks5DB(dsn)
	if err != nil {
		return nil, err
	}
	return &SQLDirectory{DB: db, TableName: table}, nil
}

func (d *SQLDirectory) Lookup(ctx context.Context, name string) (*Passwd, bool, error) {
	query := fmt.Sprintf(`SELECT name, passwd, gecos, dir, shell, uid, gid FROM %s WHERE name = $1`, d.TableName)
	row := d.DB.QueryRowContext(ctx, query, name)

	var p Passwd
	if err := row.Scan(&p.Name, &p.Passwd, &p.Gecos, &p.Dir, &p.Shell, &p.UID, &p.GID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &p, true, nil
}

func (d *SQLDirectory) Exists(ctx context.Context, uid uint32) (bool, error) {
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE uid = $1`, d.TableName)
	row := d.DB.QueryRowContext(ctx, query, uid)

	var discard int
	if err := row.Scan(&discard); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (d *SQLDirectory) Close() error {
	return d.DB.Close()
}
