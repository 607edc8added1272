package util

import "testing"

func TestRepairMojibake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"KÃ¤se", "Käse"},            // UTF-8 read as Latin-1 round-trips back
		{"Stück", "Stck"},            // lone Latin-1 byte cannot re-decode, dropped
		{"Quesadilla", "Quesadilla"}, // plain ASCII untouched
	}
	for _, tc := range cases {
		if got := RepairMojibake(tc.in); got != tc.want {
			t.Errorf("RepairMojibake(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanProductName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Birria Stück", "Birria Stack"},
		{"Kse Quesadilla", "Cheese Quesadilla"},
		{"Wings HOT HOT HOT", "Wings Hot"},
		{"Chipotle Mayo, 50ml", "Chipotle Mayo 50ml"},
		{"Cola 0,5l", "Cola 0.5l"},
		{"Tomatensauce Italien, mild", "Tomatensauce Italien mild"},
	}
	for _, tc := range cases {
		if got := CleanProductName(tc.in); got != tc.want {
			t.Errorf("CleanProductName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFoldUmlauts(t *testing.T) {
	if got := FoldUmlauts("Schöneberg Münz"); got != "Schoneberg Munz" {
		t.Errorf("got %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"IN DELIVERY":      "In Delivery",
		"ready for pickup": "Ready For Pickup",
		"Delivered":        "Delivered",
		"":                 "",
	}
	for in, want := range cases {
		if got := TitleCase(in); got != want {
			t.Errorf("TitleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
