// Package i18n maps opaque caption keys to display strings. The panel core
// only ever handles keys; resolution happens at render time.
package i18n

// Caption is an opaque caption key.
type Caption string

const (
	Back              Caption = "back"
	Move              Caption = "move"
	Heat              Caption = "heat"
	Print             Caption = "print"
	Maintenance       Caption = "maintenance"
	Status            Caption = "status"
	Settings          Caption = "settings"
	Home              Caption = "home"
	HomeZ             Caption = "home_z"
	HomeXY            Caption = "home_xy"
	HomeXYZ           Caption = "home_xyz"
	AxisX             Caption = "x"
	AxisY             Caption = "y"
	AxisZ             Caption = "z"
	PreheatABS        Caption = "preheat_abs"
	PreheatPLA        Caption = "preheat_pla"
	ManualPreheat     Caption = "manual_preheat"
	CoolDown          Caption = "cool_down"
	HotendTemperature Caption = "hotend_temperature"
	HotbedTemperature Caption = "hotbed_temperature"
	Progress          Caption = "progress"
	NoFile            Caption = "no_file"
	ManualExtrusion   Caption = "manual_extrusion"
	PrimePrinthead    Caption = "prime_printhead"
	FilamentChange    Caption = "filament_change"
	LevelBed          Caption = "level_bed"
	Extrude           Caption = "extrude"
	Retract           Caption = "retract"
	IP                Caption = "ip"
	Version           Caption = "version"
	AbortPrint        Caption = "abort_print"
	NotAbortPrint     Caption = "not_abort_print"
	InitHome          Caption = "init_home"
	DontHome          Caption = "dont_home"
	Unavailable       Caption = "unavailable"
)

// Table resolves caption keys.
type Table map[Caption]string

// Resolve returns the text for c, falling back to the key itself so a
// missing translation still renders something.
func (t Table) Resolve(c Caption) string {
	if t != nil {
		if s, ok := t[c]; ok && s != "" {
			return s
		}
	}
	return string(c)
}

// English is the built-in caption table.
func English() Table {
	return Table{
		Back:              "Back",
		Move:              "Move",
		Heat:              "Heat",
		Print:             "Print",
		Maintenance:       "Service",
		Status:            "Status",
		Settings:          "Setup",
		Home:              "Home",
		HomeZ:             "Home Z",
		HomeXY:            "Home XY",
		HomeXYZ:           "Home XYZ",
		AxisX:             "X",
		AxisY:             "Y",
		AxisZ:             "Z",
		PreheatABS:        "Preheat ABS",
		PreheatPLA:        "Preheat PLA",
		ManualPreheat:     "Manual",
		CoolDown:          "Cool down",
		HotendTemperature: "Hotend",
		HotbedTemperature: "Bed",
		Progress:          "Progress",
		NoFile:            "No file",
		ManualExtrusion:   "Extrusion",
		PrimePrinthead:    "Prime head",
		FilamentChange:    "Filament",
		LevelBed:          "Level bed",
		Extrude:           "Extrude",
		Retract:           "Retract",
		IP:                "IP",
		Version:           "Version",
		AbortPrint:        "Abort print",
		NotAbortPrint:     "Continue",
		InitHome:          "Home all axes",
		DontHome:          "Skip homing",
		Unavailable:       "--",
	}
}
