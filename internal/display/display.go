// Package display maps activity and room names to illustrative image
// references. Lookups are total: unknown names fall back to a fixed default
// per category, so the caller always has something to render.
package display

import "strings"

// Images holds the image references for one activity/room pair.
type Images struct {
	Activity string
	Room     string
}

const (
	// DefaultActivityImage is shown for activities with no dedicated image.
	DefaultActivityImage = "actividad_generica.png"
	// DefaultRoomImage is shown for rooms with no dedicated image.
	DefaultRoomImage = "sala_generica.png"
)

var activityImages = map[string]string{
	"fisioterapia":        "fisioterapia.png",
	"hidroterapia":        "hidroterapia.png",
	"terapia ocupacional": "terapia_ocupacional.png",
	"logopedia":           "logopedia.png",
	"psicomotricidad":     "psicomotricidad.png",
	"gimnasia":            "gimnasia.png",
	"musicoterapia":       "musicoterapia.png",
	"taller de memoria":   "taller_memoria.png",
	"comida":              "comida.png",
	"merienda":            "merienda.png",
	"paseo":               "paseo.png",
}

var roomImages = map[string]string{
	"sala a":           "sala_a.png",
	"sala b":           "sala_b.png",
	"sala c":           "sala_c.png",
	"sala de espera":   "sala_espera.png",
	"sala polivalente": "sala_polivalente.png",
}

// ResolveImages resolves the images for an activity name (or, failing that,
// its full description) and a room name. Keys are matched lower-cased and
// trimmed; a miss in either map yields that category's default.
func ResolveImages(activityNameOrDescription, room string) Images {
	imgs := Images{
		Activity: DefaultActivityImage,
		Room:     DefaultRoomImage,
	}
	if img, ok := activityImages[normalize(activityNameOrDescription)]; ok {
		imgs.Activity = img
	}
	if img, ok := roomImages[normalize(room)]; ok {
		imgs.Room = img
	}
	return imgs
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
