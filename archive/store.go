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
	"context"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/nlpodyssey/research-pipeline-go/report"
)

// StoredReport is a report persisted in an archive, together with the
// identity the archive assigned to it.
type StoredReport struct {
	// Unique archive identifier, in the form "report_<24 hex chars>".
	ID string

	// Time the report was saved, as recorded by the backing store.
	CreatedAt time.Time

	Report report.Report
}

// A Store persists completed reports, allowing them to be retrieved,
// listed and deleted later.
type Store interface {
	// Save persists the report under a newly generated ID and returns the
	// stored record.
	Save(ctx context.Context, r report.Report) (*StoredReport, error)

	// Get retrieves a stored report by ID.
	// It returns nil if no report with that ID exists.
	Get(ctx context.Context, id string) (*StoredReport, error)

	// List retrieves stored reports in the order they were saved, oldest
	// first.
	//
	// `limit` is the maximum number of reports to retrieve. If <= 0,
	// retrieves all reports. When specified, returns the latest N reports,
	// still oldest first.
	List(ctx context.Context, limit int) ([]StoredReport, error)

	// Delete removes a stored report by ID.
	// Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error
}

// GenReportID generates a new report ID.
func GenReportID() string {
	u := uuid.New()
	return "report_" + hex.EncodeToString(u[:])[:24]
}
