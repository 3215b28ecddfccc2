// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Stats holds the per-user aggregate counters from GET /admin/stats.
type Stats struct {
	TotalNotes   int64 `json:"total_notes"`
	PublicNotes  int64 `json:"public_notes"`
	PrivateNotes int64 `json:"private_notes"`
}
