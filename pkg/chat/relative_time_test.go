package chat

import (
	"testing"
	"time"
)

func TestRelativeAge(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Second, "Just now"},
		{59 * time.Second, "Just now"},
		{time.Minute, "1m ago"},
		{45 * time.Minute, "45m ago"},
		{time.Hour, "1h ago"},
		{23 * time.Hour, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{6*24*time.Hour + 23*time.Hour, "6d ago"},
	}
	for _, c := range cases {
		if got := RelativeAge(now.Add(-c.age), now); got != c.want {
			t.Fatalf("age %v: got %q, want %q", c.age, got, c.want)
		}
	}

	old := time.Date(2025, 1, 3, 8, 0, 0, 0, time.UTC)
	if got := RelativeAge(old, now); got != "Jan 3, 2025" {
		t.Fatalf("expected calendar date for old timestamps, got %q", got)
	}
}
