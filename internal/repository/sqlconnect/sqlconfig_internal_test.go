package sqlconnect

import (
	"testing"
	"time"
)

func TestConnectTimeoutSeconds(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want int
	}{
		{500 * time.Millisecond, 1},
		{time.Millisecond, 1},
		{time.Second, 1},
		{1500 * time.Millisecond, 2},
		{5 * time.Second, 5},
	}
	for _, c := range cases {
		if got := connectTimeoutSeconds(c.in); got != c.want {
			t.Errorf("connectTimeoutSeconds(%s) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestMaxIdleTime(t *testing.T) {
	if got := maxIdleTime(Config{MinConns: 3}); got != 0 {
		t.Fatalf("warmed connections must not expire while idle, got %s", got)
	}
	if got := maxIdleTime(Config{}); got != 5*time.Minute {
		t.Fatalf("want 5m idle expiry without a minimum, got %s", got)
	}
}
