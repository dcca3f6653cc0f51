package constants

const (
	AppName            = "rehaplan"
	Version            = "v0.2.0"
	DefaultConfigPath  = "~/.config/rehaplan/config.yaml"
	DefaultKeyringUser = "webhook-api-key"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// RestMarker suppresses a whole day's schedule when it appears anywhere
	// in the raw day string, case-insensitively.
	RestMarker = "descanso"

	// RoomPrefix is the whole-word prefix that marks a trailing schedule
	// token as a room name ("Sala A", "sala 2", ...).
	RoomPrefix = "sala"

	// Current-activity window: an activity at minute t is "happening now"
	// from t-CurrentLeadMin until t+CurrentLagMin.
	CurrentLeadMin = 15
	CurrentLagMin  = 30

	// CurrentHaloMin is the maximum distance, in minutes, at which the
	// closest activity is still promoted to "current" when nothing falls
	// inside the strict window.
	CurrentHaloMin = 120
)

// WeekDays lists the canonical weekday names, Monday first, as they arrive
// in recognition payloads (locale-native spelling, with diacritics).
var WeekDays = []string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}
