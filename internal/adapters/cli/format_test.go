package cli

import (
	"testing"

	"github.com/example/syndicate/internal/core/crackdown"
	"github.com/example/syndicate/internal/core/mission"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{2000, "$2,000"},
		{1234.6, "$1,235"},
		{-400, "-$400"},
		{1250000, "$1,250,000"},
	}

	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.4); got != "40%" {
		t.Errorf("expected 40%%, got %q", got)
	}
}

func TestLabels_PlainWithoutColor(t *testing.T) {
	if got := OutcomeLabel(mission.OutcomeSuccess); got != "SUCCESS" {
		t.Errorf("unexpected outcome label %q", got)
	}
	if got := OutcomeLabel(mission.OutcomeNone); got != "PENDING" {
		t.Errorf("unexpected outcome label %q", got)
	}
	if got := TierLabel(crackdown.TierLockdown); got != "lockdown" {
		t.Errorf("unexpected tier label %q", got)
	}
}

func TestConditionBar(t *testing.T) {
	tests := []struct {
		condition float64
		want      string
	}{
		{1, "██████████"},
		{0.5, "█████░░░░░"},
		{0, "░░░░░░░░░░"},
		{1.4, "██████████"},
	}

	for _, tt := range tests {
		if got := ConditionBar(tt.condition); got != tt.want {
			t.Errorf("ConditionBar(%v) = %q, want %q", tt.condition, got, tt.want)
		}
	}
}
