package sitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/bnema/domaingate/internal/boundaries/out"
	"github.com/bnema/domaingate/internal/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS sites (
		id TEXT PRIMARY KEY,
		custom_domain TEXT,
		verification_status TEXT NOT NULL DEFAULT 'unconfigured',
		verification_type TEXT,
		verification_name TEXT,
		verification_value TEXT,
		verification_reason TEXT,
		version INTEGER NOT NULL DEFAULT 1,
		updated_at TEXT NOT NULL,
		subscription_expires_at TEXT
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_sites_custom_domain
		ON sites (custom_domain) WHERE custom_domain IS NOT NULL;
`

// siteQueries contains all SQL queries used by the SQLite store.
type siteQueries struct {
	Insert            string
	GetByID           string
	GetByCustomDomain string
	UpdateDomain      string
	SetExpiry         string
	Exists            string
}

func newSiteQueries() *siteQueries {
	const columns = `id, custom_domain, verification_status, verification_type, verification_name,
			verification_value, verification_reason, version, updated_at, subscription_expires_at`

	return &siteQueries{
		Insert: `
			INSERT INTO sites (id, verification_status, version, updated_at, subscription_expires_at)
			VALUES (?, ?, 1, ?, ?)
		`,
		GetByID: `
			SELECT ` + columns + `
			FROM sites
			WHERE id = ?
		`,
		GetByCustomDomain: `
			SELECT ` + columns + `
			FROM sites
			WHERE custom_domain = ?
		`,
		UpdateDomain: `
			UPDATE sites SET
				custom_domain = ?,
				verification_status = ?,
				verification_type = ?,
				verification_name = ?,
				verification_value = ?,
				verification_reason = ?,
				version = version + 1,
				updated_at = ?
			WHERE id = ? AND version = ?
		`,
		SetExpiry: `
			UPDATE sites SET subscription_expires_at = ? WHERE id = ?
		`,
		Exists: `
			SELECT count(*) FROM sites WHERE id = ?
		`,
	}
}

// SQLiteStore implements out.SiteStore on a SQLite database file.
type SQLiteStore struct {
	db      *sql.DB
	queries *siteQueries
	now     func() time.Time
}

var _ out.SiteStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (and bootstraps when needed) the database at path.
// Use ":memory:" for a throwaway database.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	log := zerowrap.FromCtx(ctx)

	if path != ":memory:" {
		if err := ensureDBDir(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("failed to ensure DB directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection serializes writers and keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := bootstrap(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap database: %w", err)
	}

	log.Debug().Str(zerowrap.FieldAdapter, "sitestore").Str("path", path).Msg("sqlite site store ready")

	return &SQLiteStore{
		db:      db,
		queries: newSiteQueries(),
		now:     time.Now,
	}, nil
}

func ensureDBDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func bootstrap(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return tx.Commit()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Create inserts an empty record for siteID.
func (s *SQLiteStore) Create(ctx context.Context, siteID string, expiresAt *time.Time) (*domain.SiteDomainRecord, error) {
	now := s.now().UTC()
	if _, err := s.db.ExecContext(ctx, s.queries.Insert, siteID, string(domain.VerificationUnconfigured), formatTime(now), nullableTime(expiresAt)); err != nil {
		if isConstraintViolation(err) {
			return nil, domain.ErrSiteExists
		}
		return nil, fmt.Errorf("failed to insert site: %w", err)
	}

	zerowrap.FromCtx(ctx).Debug().
		Str(zerowrap.FieldAdapter, "sitestore").
		Str(zerowrap.FieldEntityID, siteID).
		Msg("site created")

	return s.Get(ctx, siteID)
}

// Get returns the record for siteID.
func (s *SQLiteStore) Get(ctx context.Context, siteID string) (*domain.SiteDomainRecord, error) {
	record, err := scanRecord(s.db.QueryRowContext(ctx, s.queries.GetByID, siteID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSiteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get site %s: %w", siteID, err)
	}
	return record, nil
}

// GetByCustomDomain looks a site up through the unique custom_domain index.
func (s *SQLiteStore) GetByCustomDomain(ctx context.Context, customDomain string) (*domain.SiteDomainRecord, error) {
	record, err := scanRecord(s.db.QueryRowContext(ctx, s.queries.GetByCustomDomain, customDomain))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSiteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get site by domain %s: %w", customDomain, err)
	}
	if record.SubscriptionExpired(s.now()) {
		return nil, domain.ErrSubscriptionExpired
	}
	return record, nil
}

// UpdateDomain is a compare-and-swap on the record version.
func (s *SQLiteStore) UpdateDomain(ctx context.Context, siteID string, expectedVersion int64, update domain.DomainUpdate) (*domain.SiteDomainRecord, error) {
	var customDomain sql.NullString
	if update.CustomDomain != nil && *update.CustomDomain != "" {
		customDomain = sql.NullString{String: *update.CustomDomain, Valid: true}
	}

	var vType, vName, vValue, vReason sql.NullString
	if d := update.VerificationDetails; d != nil {
		vType = nullString(d.Type)
		vName = nullString(d.Name)
		vValue = nullString(d.Value)
		vReason = nullString(d.Reason)
	}

	res, err := s.db.ExecContext(ctx, s.queries.UpdateDomain,
		customDomain, string(update.VerificationStatus),
		vType, vName, vValue, vReason,
		formatTime(s.now().UTC()),
		siteID, expectedVersion,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, domain.ErrCustomDomainTaken
		}
		return nil, fmt.Errorf("failed to update site %s: %w", siteID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		exists, err := s.exists(ctx, siteID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrSiteNotFound
		}
		return nil, domain.ErrPersistenceConflict
	}

	zerowrap.FromCtx(ctx).Debug().
		Str(zerowrap.FieldAdapter, "sitestore").
		Str(zerowrap.FieldEntityID, siteID).
		Int64("version", expectedVersion+1).
		Msg("site domain updated")

	return s.Get(ctx, siteID)
}

// SetSubscriptionExpiry records the subscription expiry for siteID.
func (s *SQLiteStore) SetSubscriptionExpiry(ctx context.Context, siteID string, expiresAt *time.Time) error {
	res, err := s.db.ExecContext(ctx, s.queries.SetExpiry, nullableTime(expiresAt), siteID)
	if err != nil {
		return fmt.Errorf("failed to set subscription expiry: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrSiteNotFound
	}
	return nil
}

func (s *SQLiteStore) exists(ctx context.Context, siteID string) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, s.queries.Exists, siteID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check site %s: %w", siteID, err)
	}
	return count > 0, nil
}

func scanRecord(row *sql.Row) (*domain.SiteDomainRecord, error) {
	var (
		r            domain.SiteDomainRecord
		customDomain sql.NullString
		status       string
		vType        sql.NullString
		vName        sql.NullString
		vValue       sql.NullString
		vReason      sql.NullString
		updatedAt    string
		expiresAt    sql.NullString
	)
	if err := row.Scan(&r.SiteID, &customDomain, &status, &vType, &vName, &vValue, &vReason, &r.Version, &updatedAt, &expiresAt); err != nil {
		return nil, err
	}

	r.VerificationStatus = domain.VerificationStatus(status)
	if customDomain.Valid {
		d := customDomain.String
		r.CustomDomain = &d
	}
	if vType.Valid || vName.Valid || vValue.Valid || vReason.Valid {
		r.VerificationDetails = &domain.VerificationDetails{
			Type:   vType.String,
			Name:   vName.String,
			Value:  vValue.String,
			Reason: vReason.String,
		}
	}

	t, err := parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at: %w", err)
	}
	r.UpdatedAt = t

	if expiresAt.Valid {
		t, err := parseTime(expiresAt.String)
		if err != nil {
			return nil, fmt.Errorf("invalid subscription_expires_at: %w", err)
		}
		r.SubscriptionExpiresAt = &t
	}
	return &r, nil
}

func isConstraintViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullableTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(t.UTC()), Valid: true}
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
