package service

import (
	"testing"

	"github.com/google/uuid"
)

func int64Ptr(v int64) *int64 { return &v }

func TestBracketsOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		aMin, aMax, bMin, bMax *int64
		want                   bool
	}{
		{"disjoint", int64Ptr(0), int64Ptr(5000), int64Ptr(5001), int64Ptr(10000), false},
		{"touching bounds", int64Ptr(0), int64Ptr(5000), int64Ptr(5000), int64Ptr(10000), true},
		{"nested", int64Ptr(0), int64Ptr(10000), int64Ptr(2000), int64Ptr(3000), true},
		{"both unbounded", nil, nil, nil, nil, true},
		{"unbounded top vs higher bracket", int64Ptr(5001), nil, int64Ptr(10000), int64Ptr(20000), true},
		{"unbounded top vs lower bracket", int64Ptr(5001), nil, int64Ptr(0), int64Ptr(5000), false},
		{"unbounded bottom vs disjoint", nil, int64Ptr(1000), int64Ptr(2000), int64Ptr(3000), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := bracketsOverlap(tc.aMin, tc.aMax, tc.bMin, tc.bMax); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := bracketsOverlap(tc.bMin, tc.bMax, tc.aMin, tc.aMax); got != tc.want {
				t.Errorf("reversed: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSameLocationScope(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	if !sameLocationScope(nil, nil) {
		t.Error("two default scopes should match")
	}
	if !sameLocationScope(&a, &a) {
		t.Error("same location should match")
	}
	if sameLocationScope(&a, &b) {
		t.Error("different locations should not match")
	}
	if sameLocationScope(&a, nil) || sameLocationScope(nil, &b) {
		t.Error("scoped and default should not match")
	}
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lawn Mowing", "lawn-mowing"},
		{"Fall Clean-Up", "fall-clean-up"},
		{"  Aeration & Overseeding  ", "aeration-overseeding"},
		{"Snow Removal 24/7", "snow-removal-247"},
	}

	for _, tc := range tests {
		if got := generateSlug(tc.in); got != tc.want {
			t.Errorf("generateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
