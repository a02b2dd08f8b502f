package input

import "slices"

// ActionReading is one logical action's resolved state, as shown on the
// overlay.
type ActionReading struct {
	Name string `json:"name"`
	Down bool   `json:"down"`
	// Hint is the primary button's display name, "" when none resolves.
	Hint string `json:"hint,omitempty"`
}

// StickSample is one logical stick's resolved triple.
type StickSample struct {
	Name     string `json:"name"`
	Present  bool   `json:"present"`
	Position int    `json:"position"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
}

// Snapshot is the overlay's view of the shim after one pump cycle.
type Snapshot struct {
	Connected bool            `json:"connected"`
	Model     string          `json:"model"`
	Ident     string          `json:"ident"`
	Actions   []ActionReading `json:"actions"`
	Sticks    []StickSample   `json:"sticks"`
	// Captured is the drained last-press name while remap capture is armed.
	Captured string `json:"captured,omitempty"`
}

// DeltaChanges carries only the snapshot groups that changed since the last
// broadcast. Nil fields are unchanged.
type DeltaChanges struct {
	Connected *bool            `json:"connected,omitempty"`
	Model     *string          `json:"model,omitempty"`
	Ident     *string          `json:"ident,omitempty"`
	Actions   *[]ActionReading `json:"actions,omitempty"`
	Sticks    *[]StickSample   `json:"sticks,omitempty"`
	Captured  *string          `json:"captured,omitempty"`
}

// IsEmpty reports whether the delta carries no changes at all.
func (d *DeltaChanges) IsEmpty() bool {
	return d.Connected == nil &&
		d.Model == nil &&
		d.Ident == nil &&
		d.Actions == nil &&
		d.Sticks == nil &&
		d.Captured == nil
}

// ComputeDelta compares two snapshots group by group.
func ComputeDelta(old, cur Snapshot) *DeltaChanges {
	d := &DeltaChanges{}

	if old.Connected != cur.Connected {
		d.Connected = &cur.Connected
	}
	if old.Model != cur.Model {
		d.Model = &cur.Model
	}
	if old.Ident != cur.Ident {
		d.Ident = &cur.Ident
	}
	if !slices.Equal(old.Actions, cur.Actions) {
		d.Actions = &cur.Actions
	}
	if !slices.Equal(old.Sticks, cur.Sticks) {
		d.Sticks = &cur.Sticks
	}
	if old.Captured != cur.Captured {
		d.Captured = &cur.Captured
	}
	return d
}
