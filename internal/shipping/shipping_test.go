package shipping

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFee(t *testing.T) {
	if got := Fee(3); !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("Fee(3) = %s, want 30", got)
	}
	if got := Fee(0); !got.Equal(decimal.Zero) {
		t.Fatalf("Fee(0) = %s, want 0", got)
	}
}

func TestManifest(t *testing.T) {
	var m Manifest
	m.Append(Unit{Name: "Cheese", Weight: 0.2}, 2)
	m.Append(Unit{Name: "Biscuits", Weight: 0.7}, 1)

	if got := len(m.Units()); got != 3 {
		t.Fatalf("unit count = %d, want 3", got)
	}
	if got, want := m.TotalWeight(), 1.1; got < want-1e-9 || got > want+1e-9 {
		t.Fatalf("TotalWeight() = %v, want %v", got, want)
	}
}

func TestWriteNotice(t *testing.T) {
	var m Manifest
	m.Append(Unit{Name: "Cheese", Weight: 0.2}, 2)
	m.Append(Unit{Name: "Biscuits", Weight: 0.7}, 1)

	var buf bytes.Buffer
	m.WriteNotice(&buf)

	want := "** Shipment notice **\n" +
		"Cheese\t200g\n" +
		"Cheese\t200g\n" +
		"Biscuits\t700g\n" +
		"Total package weight 1.1kg\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("notice mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteNoticeEmpty(t *testing.T) {
	var m Manifest
	var buf bytes.Buffer

	m.WriteNotice(&buf)
	if buf.Len() != 0 {
		t.Fatalf("empty manifest wrote %q", buf.String())
	}
}
