package domain

import "context"

// StateKey is the fixed name the snapshot is stored under, shared by every
// store backend.
const StateKey = "linkgen_state"

// AppSnapshot is the single persisted document. Field names match the
// stored JSON layout; there is no schema version and no migration — a
// reader that cannot parse the document discards it and keeps defaults.
type AppSnapshot struct {
	Jobs        []Job               `json:"jobs"`
	History     *InteractionHistory `json:"history"`
	Integration *IntegrationState   `json:"integration"`
	Profile     *UserProfile        `json:"profile"`
	Alerts      []Alert             `json:"alerts"`
	Preferences *UserPreferences    `json:"preferences"`
}

// StateStore reads and writes the snapshot blob. Load returns (nil, nil)
// when no document exists or the stored one is malformed; Save overwrites
// unconditionally.
type StateStore interface {
	Load(ctx context.Context) (*AppSnapshot, error)
	Save(ctx context.Context, snap *AppSnapshot) error
}
