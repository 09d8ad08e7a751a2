package input

import (
	"testing"
	"time"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Intent
	}{
		{"n", Intent{Action: ActionMoveNorth}},
		{"  east ", Intent{Action: ActionMoveEast}},
		{"arrow_left", Intent{Action: ActionMoveWest}},
		{"e", Intent{Action: ActionInteract}},
		{"add r-0001", Supply("r-0001")},
		{"a R-0002", Supply("R-0002")},
		{"ADD phenol red", Supply("phenol red")},
		{"drop  Phenol   Red ", Supply("Phenol Red")},
		{"add", Intent{Action: ActionNone}},
		{"2", Answer(1)},
		{"answer 3", Answer(2)},
		{"0", Intent{Action: ActionNone}},
		{"close", Intent{Action: ActionCloseProcedure}},
		{"restart", Intent{Action: ActionRestart}},
		{"dance", Intent{Action: ActionNone}},
		{"", Intent{Action: ActionNone}},
	}
	for _, tt := range tests {
		if got := ParseCommand(tt.line); got != tt.want {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestIntentDelta(t *testing.T) {
	if dr, dc := (Intent{Action: ActionMoveNorth}).Delta(); dr != -1 || dc != 0 {
		t.Errorf("MoveNorth.Delta() = (%d, %d), want (-1, 0)", dr, dc)
	}
	if dr, dc := Move(1, -1).Delta(); dr != 1 || dc != -1 {
		t.Errorf("Move(1,-1).Delta() = (%d, %d), want (1, -1)", dr, dc)
	}
	if dr, dc := (Intent{Action: ActionInteract}).Delta(); dr != 0 || dc != 0 {
		t.Errorf("Interact.Delta() = (%d, %d), want (0, 0)", dr, dc)
	}
	if !Move(0, 1).IsMove() || (Intent{Action: ActionInteract}).IsMove() {
		t.Error("IsMove misclassified intents")
	}
}

func TestDebouncer(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)
	start := time.Unix(0, 0)

	if _, ok := d.Accept(RawInput{Code: "e", Timestamp: start}); !ok {
		t.Fatal("first press rejected")
	}
	if _, ok := d.Accept(RawInput{Code: "e", Timestamp: start.Add(50 * time.Millisecond)}); ok {
		t.Error("repeat inside window accepted")
	}
	if _, ok := d.Accept(RawInput{Code: "n", Timestamp: start.Add(50 * time.Millisecond)}); !ok {
		t.Error("different code inside window rejected")
	}
	if _, ok := d.Accept(RawInput{Code: "e", Timestamp: start.Add(150 * time.Millisecond)}); !ok {
		t.Error("repeat after window rejected")
	}
}

func TestGetBindingsByActionSorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionMoveNorth]
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
}
