package display

import "testing"

func TestResolveImages(t *testing.T) {
	tests := []struct {
		name         string
		activity     string
		room         string
		wantActivity string
		wantRoom     string
	}{
		{
			name:         "known activity and room",
			activity:     "Hidroterapia",
			room:         "Sala B",
			wantActivity: "hidroterapia.png",
			wantRoom:     "sala_b.png",
		},
		{
			name:         "lookup is case-insensitive and trimmed",
			activity:     "  FISIOTERAPIA ",
			room:         " sala a ",
			wantActivity: "fisioterapia.png",
			wantRoom:     "sala_a.png",
		},
		{
			name:         "unknown activity and room fall back to defaults",
			activity:     "Desconocida",
			room:         "Pista",
			wantActivity: DefaultActivityImage,
			wantRoom:     DefaultRoomImage,
		},
		{
			name:         "empty inputs fall back to defaults",
			activity:     "",
			room:         "",
			wantActivity: DefaultActivityImage,
			wantRoom:     DefaultRoomImage,
		},
		{
			name:         "known activity with unknown room",
			activity:     "Logopedia",
			room:         "Sala Z",
			wantActivity: "logopedia.png",
			wantRoom:     DefaultRoomImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveImages(tt.activity, tt.room)
			if got.Activity != tt.wantActivity {
				t.Errorf("Activity = %q, want %q", got.Activity, tt.wantActivity)
			}
			if got.Room != tt.wantRoom {
				t.Errorf("Room = %q, want %q", got.Room, tt.wantRoom)
			}
		})
	}
}

func TestResolveImagesIdempotent(t *testing.T) {
	a := ResolveImages("Gimnasia", "Sala C")
	b := ResolveImages("Gimnasia", "Sala C")
	if a != b {
		t.Errorf("repeated resolve differs: %+v vs %+v", a, b)
	}
}
