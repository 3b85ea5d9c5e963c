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
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nlpodyssey/research-pipeline-go/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test reports
func makeTestReport(i int) report.Report {
	return report.Report{
		Topic:        fmt.Sprintf("topic %d", i),
		ResearchData: fmt.Sprintf("research %d", i),
		Analysis:     fmt.Sprintf("analysis %d", i),
		FinalSummary: fmt.Sprintf("summary %d", i),
	}
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	ctx := t.Context()

	t.Run("round trip", func(t *testing.T) {
		store, err := NewSQLiteStore(ctx, SQLiteStoreParams{
			DBDataSourceName: filepath.Join(t.TempDir(), "test.db"),
		})
		require.NoError(t, err)
		t.Cleanup(func() { assert.NoError(t, store.Close()) })

		r := report.Report{
			Topic:        "quantum computing",
			ResearchData: "1. First finding\n2. Second finding",
			Analysis:     "The findings suggest\nseveral trends.",
			FinalSummary: "A concise summary.",
		}

		stored, err := store.Save(ctx, r)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stored.ID, "report_"))
		assert.Equal(t, r, stored.Report)
		assert.WithinDuration(t, time.Now(), stored.CreatedAt, time.Minute)

		retrieved, err := store.Get(ctx, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, stored, retrieved)
	})

	t.Run("missing report", func(t *testing.T) {
		store, err := NewSQLiteStore(ctx, SQLiteStoreParams{
			DBDataSourceName: filepath.Join(t.TempDir(), "test.db"),
		})
		require.NoError(t, err)
		t.Cleanup(func() { assert.NoError(t, store.Close()) })

		retrieved, err := store.Get(ctx, "report_000000000000000000000000")
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("in-memory default", func(t *testing.T) {
		store, err := NewSQLiteStore(ctx, SQLiteStoreParams{})
		require.NoError(t, err)
		t.Cleanup(func() { assert.NoError(t, store.Close()) })

		stored, err := store.Save(ctx, makeTestReport(1))
		require.NoError(t, err)

		retrieved, err := store.Get(ctx, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, makeTestReport(1), retrieved.Report)
	})
}

func TestSQLiteStore_List(t *testing.T) {
	ctx := t.Context()

	t.Run("no limit", func(t *testing.T) {
		store, err := NewSQLiteStore(ctx, SQLiteStoreParams{
			DBDataSourceName: filepath.Join(t.TempDir(), "test.db"),
		})
		require.NoError(t, err)
		t.Cleanup(func() { assert.NoError(t, store.Close()) })

		// Empty store
		reports, err := store.List(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, reports)

		var saved []StoredReport
		for i := 1; i <= 3; i++ {
			stored, err := store.Save(ctx, makeTestReport(i))
			require.NoError(t, err)
			saved = append(saved, *stored)
		}

		// All reports, oldest first
		reports, err = store.List(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, saved, reports)
	})

	t.Run("with limit", func(t *testing.T) {
		store, err := NewSQLiteStore(ctx, SQLiteStoreParams{
			DBDataSourceName: filepath.Join(t.TempDir(), "test.db"),
		})
		require.NoError(t, err)
		t.Cleanup(func() { assert.NoError(t, store.Close()) })

		var saved []StoredReport
		for i := 1; i <= 5; i++ {
			stored, err := store.Save(ctx, makeTestReport(i))
			require.NoError(t, err)
			saved = append(saved, *stored)
		}

		// Test getting latest 2 reports
		latest2, err := store.List(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, saved[3:], latest2)

		// Test getting latest 4 reports
		latest4, err := store.List(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, saved[1:], latest4)

		// Test getting more reports than available
		latest10, err := store.List(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, saved, latest10) // Should return all available reports

		// Test negative limit same as zero (all reports)
		all, err := store.List(ctx, -123)
		require.NoError(t, err)
		assert.Equal(t, saved, all)
	})
}

func TestSQLiteStore_Delete(t *testing.T) {
	ctx := t.Context()

	store, err := NewSQLiteStore(ctx, SQLiteStoreParams{
		DBDataSourceName: filepath.Join(t.TempDir(), "test.db"),
		ReportsTable:     "custom_reports",
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	stored, err := store.Save(ctx, makeTestReport(1))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, stored.ID))

	retrieved, err := store.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Nil(t, retrieved)

	// Deleting a missing report is not an error
	assert.NoError(t, store.Delete(ctx, stored.ID))
}
