// Copyright 2026 The NLP Odyssey Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package archive

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nlpodyssey/research-pipeline-go/report"
)

// SQLiteStore is a SQLite-based implementation of report Store.
//
// By default, uses an in-memory database that is lost when the process ends.
// For persistent storage, provide a file path.
type SQLiteStore struct {
	dbDSN        string
	reportsTable string
	db           *sql.DB
	mu           sync.Mutex
}

type SQLiteStoreParams struct {
	// Optional database data source name.
	// Defaults to "file::memory:?cache=shared" (in-memory database).
	DBDataSourceName string

	// Optional name of the table to store reports.
	// Defaults to "research_reports".
	ReportsTable string
}

// NewSQLiteStore initializes the SQLite store.
func NewSQLiteStore(ctx context.Context, params SQLiteStoreParams) (_ *SQLiteStore, err error) {
	s := &SQLiteStore{
		dbDSN:        cmp.Or(params.DBDataSourceName, "file::memory:?cache=shared"),
		reportsTable: cmp.Or(params.ReportsTable, "research_reports"),
	}

	defer func() {
		if err != nil && s.db != nil {
			if e := s.db.Close(); e != nil {
				err = errors.Join(err, e)
			}
		}
	}()

	s.db, err = sql.Open("sqlite3", s.dbDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite3 database: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	err = s.initDB(ctx)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Save(ctx context.Context, r report.Report) (*StoredReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &StoredReport{
		ID:     GenReportID(),
		Report: r,
	}

	_, err := s.db.ExecContext(
		ctx,
		fmt.Sprintf(`
			INSERT INTO "%s" (id, topic, research_data, analysis, final_summary)
			VALUES (?, ?, ?, ?, ?)
		`, s.reportsTable),
		stored.ID, r.Topic, r.ResearchData, r.Analysis, r.FinalSummary,
	)
	if err != nil {
		return nil, fmt.Errorf("error inserting report: %w", err)
	}

	err = s.db.QueryRowContext(
		ctx,
		fmt.Sprintf(`SELECT created_at FROM "%s" WHERE id = ?`, s.reportsTable),
		stored.ID,
	).Scan(&stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error reading back report timestamp: %w", err)
	}

	return stored, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*StoredReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := StoredReport{ID: id}
	err := s.db.QueryRowContext(
		ctx,
		fmt.Sprintf(`
			SELECT topic, research_data, analysis, final_summary, created_at
			FROM "%s"
			WHERE id = ?
		`, s.reportsTable),
		id,
	).Scan(
		&stored.Report.Topic,
		&stored.Report.ResearchData,
		&stored.Report.Analysis,
		&stored.Report.FinalSummary,
		&stored.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying report: %w", err)
	}
	return &stored, nil
}

func (s *SQLiteStore) List(ctx context.Context, limit int) (_ []StoredReport, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows *sql.Rows
	if limit <= 0 {
		// Fetch all reports in insertion order
		rows, err = s.db.QueryContext(ctx, fmt.Sprintf(`
			SELECT id, topic, research_data, analysis, final_summary, created_at
			FROM "%s"
			ORDER BY seq ASC
		`, s.reportsTable))
	} else {
		// Fetch the latest N reports in insertion order
		rows, err = s.db.QueryContext(ctx, fmt.Sprintf(`
			SELECT id, topic, research_data, analysis, final_summary, created_at
			FROM "%s"
			ORDER BY seq DESC
			LIMIT ?
		`, s.reportsTable), limit)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer func() {
		if e := rows.Close(); e != nil {
			err = errors.Join(err, fmt.Errorf("error closing sql.Rows: %w", e))
		}
	}()

	var reports []StoredReport
	for rows.Next() {
		var stored StoredReport
		err = rows.Scan(
			&stored.ID,
			&stored.Report.Topic,
			&stored.Report.ResearchData,
			&stored.Report.Analysis,
			&stored.Report.FinalSummary,
			&stored.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("sql rows scan error: %w", err)
		}
		reports = append(reports, stored)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("sql rows scan error: %w", err)
	}

	// Reverse to get insertion order when using DESC
	if limit > 0 {
		slices.Reverse(reports)
	}

	return reports, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(
		ctx,
		fmt.Sprintf(`DELETE FROM "%s" WHERE id = ?`, s.reportsTable),
		id,
	)
	if err != nil {
		return fmt.Errorf("error deleting report: %w", err)
	}
	return nil
}

// Initialize the database schema.
//
// The seq column preserves insertion order even when multiple reports share
// the same created_at second.
func (s *SQLiteStore) initDB(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s" (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			topic TEXT NOT NULL,
			research_data TEXT NOT NULL,
			analysis TEXT NOT NULL,
			final_summary TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, s.reportsTable))
	if err != nil {
		return fmt.Errorf("error creating reports table: %w", err)
	}
	return nil
}

// Close the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
