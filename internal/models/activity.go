package models

// Activity is one scheduled session derived from raw schedule text.
// Values are immutable once produced by the parser.
type Activity struct {
	// Time is the wall-clock time of day in HH:MM form, as written.
	Time string `json:"time" yaml:"time"`
	// Minutes is Time converted to minute-of-day (0-1439).
	Minutes int `json:"minutes" yaml:"minutes"`
	// Description is the raw text after the first hyphen, unmodified.
	Description string `json:"description" yaml:"description"`
	// Name is Description with a trailing room token stripped, if present.
	Name string `json:"name" yaml:"name"`
	// Room is the trailing "sala ..." token, or empty when absent.
	Room string `json:"room,omitempty" yaml:"room,omitempty"`
	// FullDescription is "Name • Room" when a room is present, else Name.
	FullDescription string `json:"full_description" yaml:"full_description"`
}

// HasRoom reports whether the activity carries a room assignment.
func (a Activity) HasRoom() bool {
	return a.Room != ""
}

// DayContext is the "what is happening now / next" answer for one day,
// relative to a single reference instant.
type DayContext struct {
	Current   *Activity `json:"current,omitempty"`
	Next      *Activity `json:"next,omitempty"`
	Total     int       `json:"total"`
	Completed int       `json:"completed"`
	Upcoming  int       `json:"upcoming"`
}
