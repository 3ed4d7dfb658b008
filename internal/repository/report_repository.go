package repository

import (
	"database/sql"
	"noticeboard/internal/model"

	"github.com/lib/pq"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS load_report (
			id         UUID PRIMARY KEY,
			component  TEXT NOT NULL,
			outcome    TEXT NOT NULL,
			rows       INTEGER NOT NULL DEFAULT 0,
			skipped    INTEGER NOT NULL DEFAULT 0,
			hidden     INTEGER NOT NULL DEFAULT 0,
			eligible   INTEGER NOT NULL DEFAULT 0,
			error      TEXT NOT NULL DEFAULT '',
			loaded_at  TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS load_report_loaded_at_idx ON load_report (loaded_at DESC);
	`)
	return err
}

// SaveReport stores a report once. It returns false when a report with the
// same id was already saved.
func (r *ReportRepository) SaveReport(report *model.LoadReport) (bool, error) {
	res, err := r.db.Exec(`
		INSERT INTO load_report(id, component, outcome, rows, skipped, hidden, eligible, error, loaded_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`, report.ID, report.Component, report.Outcome, report.Rows, report.Skipped, report.Hidden, report.Eligible, report.Error, report.LoadedAt)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n == 1, nil
}

// GetReports lists reports newest first. An empty components slice matches
// every component.
func (r *ReportRepository) GetReports(limit, offset int, components []string) ([]model.LoadReport, error) {
	rows, err := r.db.Query(`
		SELECT id, component, outcome, rows, skipped, hidden, eligible, error, loaded_at
		FROM load_report
		WHERE cardinality($1::text[]) = 0 OR component = ANY($1)
		ORDER BY loaded_at DESC
		LIMIT $2 OFFSET $3
	`, pq.Array(components), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.LoadReport
	for rows.Next() {
		var rep model.LoadReport
		err := rows.Scan(&rep.ID, &rep.Component, &rep.Outcome, &rep.Rows, &rep.Skipped, &rep.Hidden, &rep.Eligible, &rep.Error, &rep.LoadedAt)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *ReportRepository) GetReportTotal(components []string) (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM load_report
		WHERE cardinality($1::text[]) = 0 OR component = ANY($1)
	`, pq.Array(components)).Scan(&total)
	return total, err
}
