// File: internal/csvutil/csvutil_test.go
// Brief: CSV table encoding tests.

package csvutil

import (
	"bytes"
	"testing"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf,
		[]string{"id", "name", "mass_g"},
		[][]string{
			{"frame-hex650", "HexLift 650", "1855"},
			{"bat-6s-5000", "Tattu 6S 5000", "628"},
		})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	want := "id,name,mass_g\nframe-hex650,HexLift 650,1855\nbat-6s-5000,Tattu 6S 5000,628\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv output:\n%s", buf.String())
	}
}

func TestWriteTableQuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf,
		[]string{"id", "notes"},
		[][]string{{"prop-4006-6", "6 units, 330kv"}})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	want := "id,notes\nprop-4006-6,\"6 units, 330kv\"\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv output:\n%s", buf.String())
	}
}

func TestWriteTablePadsShortRows(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf,
		[]string{"id", "name", "domain"},
		[][]string{{"ant-24-omni"}})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	want := "id,name,domain\nant-24-omni,,\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv output:\n%s", buf.String())
	}
}
