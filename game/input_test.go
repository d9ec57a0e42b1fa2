package game

import (
	"reflect"
	"testing"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		in      string
		want    []Command
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "right", want: []Command{CommandMoveRight}},
		{in: "right*2,jump,wait*1,left", want: []Command{CommandMoveRight, CommandMoveRight, CommandJump, CommandNone, CommandMoveLeft}},
		{in: " Space , r ", want: []Command{CommandJump, CommandReset}},
		{in: "jump*0", want: nil},
		{in: "dance", wantErr: true},
		{in: "left*x", wantErr: true},
		{in: "left*-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScript(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyRepeat(t *testing.T) {
	r := KeyRepeat{Delay: 30, Interval: 2}
	var fired []int
	for d := 0; d <= 36; d++ {
		if r.Fires(d) {
			fired = append(fired, d)
		}
	}
	want := []int{1, 32, 34, 36}
	if !reflect.DeepEqual(fired, want) {
		t.Fatalf("fired on %v, want %v", fired, want)
	}

	if (KeyRepeat{}).Fires(100) {
		t.Fatal("zero interval should only fire on press")
	}
}

func TestCommandStringRoundTrip(t *testing.T) {
	for _, cmd := range []Command{CommandNone, CommandMoveLeft, CommandMoveRight, CommandJump, CommandReset} {
		got, err := ParseCommand(cmd.String())
		if err != nil || got != cmd {
			t.Fatalf("ParseCommand(%q) = %v, %v", cmd.String(), got, err)
		}
	}
}
