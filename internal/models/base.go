package models

import "github.com/google/uuid"

// ensureID assigns a fresh UUID when id is unset. IDs are generated in Go
// so the same models work on PostgreSQL and SQLite.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
