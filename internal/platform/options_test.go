package platform

import (
	"testing"
	"time"
)

func TestExpireMillis(t *testing.T) {
	if got := (Options{}).expireMillis(); got != -1 {
		t.Fatalf("zero timeout: got %d want -1", got)
	}
	if got := (Options{Timeout: 5 * time.Second}).expireMillis(); got != 5000 {
		t.Fatalf("5s timeout: got %d want 5000", got)
	}
}
