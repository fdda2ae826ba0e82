package helpers

import (
	"testing"
	"time"
)

func TestCalculateOffsetLimit(t *testing.T) {
	cases := []struct {
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{1, 20, 0, 20},
		{3, 10, 20, 10},
		{0, 10, 0, 10},   // page clamps to 1
		{2, 0, 20, 20},   // size falls back to default
		{1, 500, 0, 20},  // size above max falls back to default
		{-1, -1, 0, 20},
	}

	for _, tc := range cases {
		offset, limit := CalculateOffsetLimit(tc.page, tc.size)
		if offset != tc.wantOffset || limit != tc.wantLimit {
			t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.size, offset, limit, tc.wantOffset, tc.wantLimit)
		}
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 20)
	if info.TotalPages != 3 || info.CurrentPage != 2 || info.TotalItems != 45 {
		t.Errorf("unexpected pagination: %+v", info)
	}

	empty := NewPaginationInfo(0, 1, 20)
	if empty.TotalPages != 1 || empty.CurrentPage != 1 {
		t.Errorf("empty result should keep page 1: %+v", empty)
	}

	overshoot := NewPaginationInfo(10, 9, 20)
	if overshoot.CurrentPage != 1 {
		t.Errorf("page past the end should clamp: %+v", overshoot)
	}
}

func TestParseBirthDate(t *testing.T) {
	parsed, err := ParseBirthDate("2011-03-17")
	if err != nil {
		t.Fatalf("ParseBirthDate: %v", err)
	}
	if !parsed.Equal(time.Date(2011, 3, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("parsed = %v", parsed)
	}

	if _, err := ParseBirthDate("17.03.2011"); err == nil {
		t.Error("wrong layout should fail")
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("ParseDuration = %v", got)
	}
	if got := ParseDuration("bogus", time.Hour); got != time.Hour {
		t.Errorf("fallback = %v, want 1h", got)
	}
}
