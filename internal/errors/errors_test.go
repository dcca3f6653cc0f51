package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(fmt.Errorf("boom")); got != "Error: boom" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormatf(t *testing.T) {
	if got := Formatf("bad value %d", 7); got != "Error: bad value 7" {
		t.Errorf("Formatf() = %q", got)
	}
}
