package mididarwin

import "testing"

func TestFormatDescriptor(t *testing.T) {
	got := formatDescriptor(20, "MU100", 0, "MU100 Port 1")
	want := "20:MU100 / 0:MU100 Port 1"
	if got != want {
		t.Fatalf("formatDescriptor = %q, want %q", got, want)
	}
}

func TestMatchDescriptorIgnoresIDs(t *testing.T) {
	tests := []struct {
		descriptor string
		client     string
		port       string
		want       bool
	}{
		{"20:MU100 / 0:MU100 Port 1", "MU100", "MU100 Port 1", true},
		// Renumbered bus: names still match.
		{"36:MU100 / 2:MU100 Port 1", "MU100", "MU100 Port 1", true},
		{"20:MU100 / 0:MU100 Port 1", "MU100", "MU100 Port 2", false},
		{"20:MU100 / 0:MU100 Port 1", "SC-88", "MU100 Port 1", false},
		{"garbage", "MU100", "MU100 Port 1", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		if got := matchDescriptor(tt.descriptor, tt.client, tt.port); got != tt.want {
			t.Errorf("matchDescriptor(%q, %q, %q) = %v, want %v",
				tt.descriptor, tt.client, tt.port, got, tt.want)
		}
	}
}
