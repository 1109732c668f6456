package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
)

type postgresDSNInfo struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

// BuildPostgresDSNFromEnv POSTGRES_HOST/USER/PASSWORD/DB/PORT/SSLMODE dan URL yig'ish.
// Empty when host, user or db is missing.
func BuildPostgresDSNFromEnv() string {
	info := postgresDSNInfo{
		Host:     strings.TrimSpace(os.Getenv("POSTGRES_HOST")),
		User:     strings.TrimSpace(os.Getenv("POSTGRES_USER")),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   strings.TrimPrefix(strings.TrimSpace(os.Getenv("POSTGRES_DB")), "/"),
		Port:     strings.TrimSpace(os.Getenv("POSTGRES_PORT")),
		SSLMode:  strings.TrimSpace(os.Getenv("POSTGRES_SSLMODE")),
	}
	if info.Host == "" || info.User == "" || info.DBName == "" {
		return ""
	}
	if info.SSLMode == "" {
		info.SSLMode = "disable"
	}
	return info.buildURL(info.DBName)
}

type connectOptions struct {
	attempts int
	delay    time.Duration
	log      zerolog.Logger
}

// openPostgresWithRetry ping muvaffaqiyatli bo'lguncha qayta urinish.
// A missing database is created once through the same server.
func openPostgresWithRetry(ctx context.Context, dsn string, opts connectOptions) (*sql.DB, error) {
	if opts.attempts <= 0 {
		opts.attempts = constants.PostgresConnectAttempts
	}
	if opts.delay <= 0 {
		opts.delay = constants.PostgresConnectDelay
	}

	var lastErr error
	created := false
	for attempt := 1; attempt <= opts.attempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if err = db.PingContext(ctx); err == nil {
				return db, nil
			}
		}
		if db != nil {
			_ = db.Close()
		}
		lastErr = err
		if !created && isDatabaseMissingError(err) {
			if createErr := ensurePostgresDatabase(ctx, dsn); createErr == nil {
				created = true
				opts.log.Info().Msg("postgres database created")
				continue
			} else {
				lastErr = createErr
			}
		}
		opts.log.Warn().Err(lastErr).Int("attempt", attempt).Int("max", opts.attempts).Msg("postgres connect failed")
		if attempt < opts.attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(opts.delay):
			}
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("postgres connection failed")
	}
	return nil, lastErr
}

func ensurePostgresDatabase(ctx context.Context, dsn string) error {
	info, ok := parsePostgresDSNInfo(dsn)
	if !ok || info.DBName == "" || info.Host == "" || info.User == "" {
		return fmt.Errorf("database info not found in dsn")
	}
	baseDSN := info.buildURL("postgres")
	err := createPostgresDatabaseWithDSN(ctx, baseDSN, info.DBName)
	if err == nil {
		return nil
	}
	if adminDSN := strings.TrimSpace(os.Getenv("POSTGRES_ADMIN_DSN")); adminDSN != "" && adminDSN != baseDSN {
		return createPostgresDatabaseWithDSN(ctx, adminDSN, info.DBName)
	}
	return err
}

func parsePostgresDSNInfo(dsn string) (postgresDSNInfo, bool) {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" {
		return postgresDSNInfo{}, false
	}
	if strings.HasPrefix(trimmed, "postgres://") || strings.HasPrefix(trimmed, "postgresql://") {
		if info, ok := parsePostgresURL(trimmed); ok {
			return info, true
		}
	}
	return parsePostgresKeyValue(trimmed)
}

func parsePostgresURL(raw string) (postgresDSNInfo, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return postgresDSNInfo{}, false
	}
	info := postgresDSNInfo{
		Host:    u.Hostname(),
		Port:    u.Port(),
		DBName:  strings.TrimPrefix(u.Path, "/"),
		SSLMode: u.Query().Get("sslmode"),
	}
	if u.User != nil {
		info.User = u.User.Username()
		if pass, ok := u.User.Password(); ok {
			info.Password = pass
		}
	}
	if info.Port == "" {
		info.Port = "5432"
	}
	if info.SSLMode == "" {
		info.SSLMode = "disable"
	}
	return info, true
}

func parsePostgresKeyValue(raw string) (postgresDSNInfo, bool) {
	info := postgresDSNInfo{}
	for _, part := range strings.Fields(raw) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		val := strings.Trim(kv[1], `"'`)
		switch strings.ToLower(strings.TrimSpace(kv[0])) {
		case "user", "username":
			info.User = val
		case "password":
			info.Password = val
		case "host":
			info.Host = val
		case "port":
			info.Port = val
		case "dbname", "database":
			info.DBName = val
		case "sslmode":
			info.SSLMode = val
		}
	}
	if info.Host == "" && info.User == "" && info.DBName == "" {
		return postgresDSNInfo{}, false
	}
	if info.Port == "" {
		info.Port = "5432"
	}
	if info.SSLMode == "" {
		info.SSLMode = "disable"
	}
	return info, true
}

func (p postgresDSNInfo) buildURL(dbName string) string {
	host := p.Host
	port := p.Port
	if port == "" {
		port = "5432"
	}
	if host != "" {
		host = net.JoinHostPort(host, port)
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   host,
		Path:   "/" + dbName,
	}
	if p.User != "" {
		if p.Password != "" {
			u.User = url.UserPassword(p.User, p.Password)
		} else {
			u.User = url.User(p.User)
		}
	}
	q := u.Query()
	if strings.TrimSpace(p.SSLMode) != "" {
		q.Set("sslmode", p.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func createPostgresDatabaseWithDSN(ctx context.Context, dsn, dbName string) error {
	if strings.TrimSpace(dsn) == "" || strings.TrimSpace(dbName) == "" {
		return fmt.Errorf("admin dsn or db name missing")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+quoteIdentifier(dbName)); err != nil {
		if isDatabaseExistsError(err) {
			return nil
		}
		return err
	}
	return nil
}

func isDatabaseMissingError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "does not exist") && strings.Contains(msg, "database")
}

func isDatabaseExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") && strings.Contains(msg, "database")
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
