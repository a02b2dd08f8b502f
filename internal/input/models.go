package input

// Built-in gamepad models. Identification strings and index layouts follow
// what the Linux kernel drivers report for each device; symbol assignment for
// face buttons is positional (PadA is always the south button).

const (
	axisMin = -32767
	axisMax = 32767
)

var xbox360Profile = &Profile{
	Ident:   "Microsoft X-Box 360 pad",
	Display: "xbox360",
	Buttons: []PhysicalButton{
		PadA, PadB, PadX, PadY,
		PadLeftShoulder, PadRightShoulder,
		PadBack, PadStart, PadGuide,
		PadLeftStick, PadRightStick,
	},
	Axes: []AxisRole{
		{Stick: StickLeftX, Min: axisMin, Max: axisMax},
		{Stick: StickLeftY, Min: axisMin, Max: axisMax},
		{Stick: StickLeftTrigger, Min: axisMin, Max: axisMax, Pos: PadLeftTrigger},
		{Stick: StickRightX, Min: axisMin, Max: axisMax},
		{Stick: StickRightY, Min: axisMin, Max: axisMax},
		{Stick: StickRightTrigger, Min: axisMin, Max: axisMax, Pos: PadRightTrigger},
		{Stick: StickDpadX, Min: axisMin, Max: axisMax, Neg: PadLeft, Pos: PadRight},
		{Stick: StickDpadY, Min: axisMin, Max: axisMax, Neg: PadUp, Pos: PadDown},
	},
}

var xboxOneProfile = &Profile{
	Ident:   "Microsoft X-Box One pad",
	Display: "xboxone",
	Buttons: xbox360Profile.Buttons,
	Axes:    xbox360Profile.Axes,
}

// DualShock 4 and DualSense share an index layout: the triggers sit on axes
// 2 and 5 and also appear as plain buttons 6 and 7, so their axes stay pure
// analog here.
var dualshock4Axes = []AxisRole{
	{Stick: StickLeftX, Min: axisMin, Max: axisMax},
	{Stick: StickLeftY, Min: axisMin, Max: axisMax},
	{Stick: StickLeftTrigger, Min: axisMin, Max: axisMax},
	{Stick: StickRightX, Min: axisMin, Max: axisMax},
	{Stick: StickRightY, Min: axisMin, Max: axisMax},
	{Stick: StickRightTrigger, Min: axisMin, Max: axisMax},
	{Stick: StickDpadX, Min: axisMin, Max: axisMax, Neg: PadLeft, Pos: PadRight},
	{Stick: StickDpadY, Min: axisMin, Max: axisMax, Neg: PadUp, Pos: PadDown},
}

var dualshock4Buttons = []PhysicalButton{
	PadA,    // Cross
	PadB,    // Circle
	PadY,    // Triangle
	PadX,    // Square
	PadLeftShoulder,
	PadRightShoulder,
	PadLeftTrigger,
	PadRightTrigger,
	PadBack,  // Share
	PadStart, // Options
	PadGuide, // PS
	PadLeftStick,
	PadRightStick,
}

var dualshock4Profile = &Profile{
	Ident:   "Sony Interactive Entertainment Wireless Controller",
	Display: "dualshock4",
	Buttons: dualshock4Buttons,
	Axes:    dualshock4Axes,
}

var dualshock4OldProfile = &Profile{
	Ident:   "Sony Computer Entertainment Wireless Controller",
	Display: "dualshock4",
	Buttons: dualshock4Buttons,
	Axes:    dualshock4Axes,
}

var dualsenseProfile = &Profile{
	Ident:   "Sony Interactive Entertainment DualSense Wireless Controller",
	Display: "dualsense",
	Buttons: dualshock4Buttons,
	Axes:    dualshock4Axes,
}

var switchProProfile = &Profile{
	Ident:   "Nintendo Co., Ltd. Pro Controller",
	Display: "switchpro",
	Buttons: []PhysicalButton{
		PadB, PadA, PadX, PadY,
		PadLeftShoulder, PadRightShoulder,
		PadLeftTrigger, PadRightTrigger,
		PadBack,  // Minus
		PadStart, // Plus
		PadGuide, // Home
		PadLeftStick, PadRightStick,
	},
	Axes: []AxisRole{
		{Stick: StickLeftX, Min: axisMin, Max: axisMax},
		{Stick: StickLeftY, Min: axisMin, Max: axisMax},
		{Stick: StickRightX, Min: axisMin, Max: axisMax},
		{Stick: StickRightY, Min: axisMin, Max: axisMax},
		{Stick: StickDpadX, Min: axisMin, Max: axisMax, Neg: PadLeft, Pos: PadRight},
		{Stick: StickDpadY, Min: axisMin, Max: axisMax, Neg: PadUp, Pos: PadDown},
	},
}

var sn30ProProfile = &Profile{
	Ident:   "8BitDo SN30 Pro",
	Display: "sn30pro",
	Buttons: []PhysicalButton{
		PadB, PadA, PadY, PadX,
		PadLeftShoulder, PadRightShoulder,
		PadBack, PadStart, PadGuide,
		PadLeftStick, PadRightStick,
	},
	Axes: []AxisRole{
		{Stick: StickLeftX, Min: axisMin, Max: axisMax},
		{Stick: StickLeftY, Min: axisMin, Max: axisMax},
		{Stick: StickLeftTrigger, Min: axisMin, Max: axisMax, Pos: PadLeftTrigger},
		{Stick: StickRightX, Min: axisMin, Max: axisMax},
		{Stick: StickRightY, Min: axisMin, Max: axisMax},
		{Stick: StickRightTrigger, Min: axisMin, Max: axisMax, Pos: PadRightTrigger},
		{Stick: StickDpadX, Min: axisMin, Max: axisMax, Neg: PadLeft, Pos: PadRight},
		{Stick: StickDpadY, Min: axisMin, Max: axisMax, Neg: PadUp, Pos: PadDown},
	},
}

// Profiles is the model table discovery matches identification strings
// against. Order matters only when two entries claim the same string, which
// none do.
var Profiles = []*Profile{
	xbox360Profile,
	xboxOneProfile,
	dualshock4Profile,
	dualshock4OldProfile,
	dualsenseProfile,
	switchProProfile,
	sn30ProProfile,
}
