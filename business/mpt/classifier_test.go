package mpt_test

import (
	"reflect"
	"testing"

	"github.com/superfeelapi/goMptTriage/business/mpt"
)

func TestClassifyBuckets(t *testing.T) {
	tests := []struct {
		seconds float64
		urgency string
		esi     int
		color   string
	}{
		{0, "IMMEDIATE", 1, "RED"},
		{7.99, "IMMEDIATE", 1, "RED"},
		{8.0, "URGENT", 2, "ORANGE"},
		{9.99, "URGENT", 2, "ORANGE"},
		{10.0, "CONCERNING", 2, "YELLOW"},
		{14.99, "CONCERNING", 2, "YELLOW"},
		{15.0, "BORDERLINE", 3, "YELLOW"},
		{19.99, "BORDERLINE", 3, "YELLOW"},
		{20.0, "NORMAL", 4, "GREEN"},
		{47.5, "NORMAL", 4, "GREEN"},
	}

	for _, tt := range tests {
		c := mpt.Classify(tt.seconds)
		if c.Urgency != tt.urgency {
			t.Errorf("Classify(%v).Urgency = %s, want %s", tt.seconds, c.Urgency, tt.urgency)
		}
		if c.EsiLevel != tt.esi {
			t.Errorf("Classify(%v).EsiLevel = %d, want %d", tt.seconds, c.EsiLevel, tt.esi)
		}
		if c.Color != tt.color {
			t.Errorf("Classify(%v).Color = %s, want %s", tt.seconds, c.Color, tt.color)
		}
		if c.Category == "" || c.Action == "" {
			t.Errorf("Classify(%v) has empty category or action", tt.seconds)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	a := mpt.Classify(12.3)
	b := mpt.Classify(12.3)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Classify not deterministic: %+v vs %+v", a, b)
	}
}
