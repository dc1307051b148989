package postgres

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica las migraciones pendientes sobre la base indicada por dsn.
// Acepta URL (postgres:// o postgresql://) o la forma clave=valor ("host=db dbname=crm").
func Migrate(dsn string) error {
	m, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// MigrateDown revierte todas las migraciones (usado por crmctl y los tests de integración).
func MigrateDown(dsn string) error {
	m, err := newMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

func newMigrator(dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migrations source: %w", err)
	}
	target, err := migrateURL(dsn)
	if err != nil {
		return nil, err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, target)
	if err != nil {
		return nil, fmt.Errorf("migrate init: %w", err)
	}
	return m, nil
}

// migrateURL cambia el esquema del DSN al registrado por el driver pgx/v5 de golang-migrate.
// Un DSN clave=valor se convierte antes a URL: golang-migrate elige el driver por el esquema.
func migrateURL(dsn string) (string, error) {
	dsn = strings.TrimSpace(dsn)
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix), nil
		}
	}
	if strings.Contains(dsn, "://") {
		return dsn, nil
	}
	settings, err := parseKeywordDSN(dsn)
	if err != nil {
		return "", err
	}
	return keywordURL(settings), nil
}

func keywordURL(settings map[string]string) string {
	u := &url.URL{Scheme: "pgx5", Host: settings["host"]}
	if port := settings["port"]; port != "" {
		u.Host += ":" + port
	}
	if user := settings["user"]; user != "" {
		if pass, ok := settings["password"]; ok {
			u.User = url.UserPassword(user, pass)
		} else {
			u.User = url.User(user)
		}
	}
	if db := settings["dbname"]; db != "" {
		u.Path = "/" + db
	}
	q := url.Values{}
	for k, v := range settings {
		switch k {
		case "host", "port", "user", "password", "dbname":
		default:
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// parseKeywordDSN lee "clave=valor" separados por espacios; los valores pueden ir entre
// comillas simples con \' y \\ escapados.
func parseKeywordDSN(dsn string) (map[string]string, error) {
	settings := map[string]string{}
	s := dsn
	for {
		s = strings.TrimLeft(s, " \t\n")
		if s == "" {
			break
		}
		eq := strings.IndexByte(s, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("dsn inválido: se espera clave=valor en %q", s)
		}
		key := strings.TrimSpace(s[:eq])
		s = strings.TrimLeft(s[eq+1:], " \t\n")

		var val strings.Builder
		if strings.HasPrefix(s, "'") {
			s = s[1:]
			closed := false
			for len(s) > 0 {
				ch := s[0]
				s = s[1:]
				if ch == '\\' && len(s) > 0 {
					val.WriteByte(s[0])
					s = s[1:]
					continue
				}
				if ch == '\'' {
					closed = true
					break
				}
				val.WriteByte(ch)
			}
			if !closed {
				return nil, fmt.Errorf("dsn inválido: comilla sin cerrar en %q", key)
			}
		} else {
			end := strings.IndexAny(s, " \t\n")
			if end < 0 {
				end = len(s)
			}
			val.WriteString(s[:end])
			s = s[end:]
		}
		settings[key] = val.String()
	}
	return settings, nil
}
