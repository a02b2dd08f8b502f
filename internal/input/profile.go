package input

// AxisRole describes what a gamepad model does with one raw axis index. The
// stick symbol is the axis's analog identity and always receives the raw
// value verbatim. Neg and Pos, when not ButtonNone, make the axis hybrid: the
// model also reports it as a pair of mutually exclusive digital buttons, one
// per sign of the value.
type AxisRole struct {
	Stick PhysicalStick
	Min   int
	Max   int
	Neg   PhysicalButton
	Pos   PhysicalButton
}

// Hybrid reports whether the axis doubles as an emulated button pair.
func (a AxisRole) Hybrid() bool {
	return a.Neg != ButtonNone || a.Pos != ButtonNone
}

// Profile is the static description of one gamepad model: how its raw button
// and axis indices map onto physical symbols. Profiles are matched against a
// device by the identification string the device reports.
type Profile struct {
	// Ident must equal the device-reported identification string exactly.
	Ident string

	// Display is the short model name used in logs and the overlay.
	Display string

	// Buttons maps raw button index to symbol. Indices beyond the table are
	// ignored by the translator.
	Buttons []PhysicalButton

	// Axes maps raw axis index to its role.
	Axes []AxisRole
}

// Button returns the symbol for a raw button index, or false when the index
// is outside the model's table.
func (p *Profile) Button(index int) (PhysicalButton, bool) {
	if index < 0 || index >= len(p.Buttons) {
		return ButtonNone, false
	}
	b := p.Buttons[index]
	return b, b != ButtonNone
}

// Axis returns the role for a raw axis index, or false when the index is
// outside the model's table or carries no stick identity.
func (p *Profile) Axis(index int) (AxisRole, bool) {
	if index < 0 || index >= len(p.Axes) {
		return AxisRole{}, false
	}
	a := p.Axes[index]
	return a, a.Stick != StickNone
}

// BindsButton reports whether the symbol is physically reachable on this
// model, either as a direct button or as one emulated side of a hybrid axis.
func (p *Profile) BindsButton(b PhysicalButton) bool {
	if b == ButtonNone {
		return false
	}
	for _, pb := range p.Buttons {
		if pb == b {
			return true
		}
	}
	for _, a := range p.Axes {
		if a.Neg == b || a.Pos == b {
			return true
		}
	}
	return false
}

// FindProfile returns the profile whose identification string equals ident
// exactly, or nil. Matching is deliberately exact: near-miss names belong to
// devices we have never verified a table for.
func FindProfile(ident string) *Profile {
	for _, p := range Profiles {
		if p.Ident == ident {
			return p
		}
	}
	return nil
}
