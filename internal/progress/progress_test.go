package progress

import (
	"bytes"
	"os"
	"testing"
)

func TestBar_Counts(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, 3, "Normalizing", true)

	for i := 0; i < 3; i++ {
		b.Tick()
	}
	b.Finish()

	if b.Done() != 3 {
		t.Errorf("Done() = %d, want 3", b.Done())
	}
	if buf.Len() == 0 {
		t.Error("visible bar should write to its writer")
	}
}

func TestBar_Hidden(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, 5, "Normalizing", false)

	b.Tick()
	b.Tick()
	b.Finish()

	if b.Done() != 2 {
		t.Errorf("Done() = %d, want 2", b.Done())
	}
	if buf.Len() != 0 {
		t.Errorf("hidden bar wrote %q", buf.String())
	}
}

func TestBar_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, 0, "Normalizing", true)
	b.Finish()

	if buf.Len() != 0 {
		t.Errorf("bar with no items wrote %q", buf.String())
	}
}

func TestBar_Nil(t *testing.T) {
	var b *Bar

	// none of these should panic
	b.Tick()
	b.Finish()
	if b.Done() != 0 {
		t.Errorf("nil Done() = %d, want 0", b.Done())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "progress")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
