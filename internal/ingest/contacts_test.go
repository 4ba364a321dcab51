package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing fixture %s: %s", name, err)
	}
	return path
}

func TestLoadContacts_ParsesAndSortsRows(t *testing.T) {
	path := writeFixture(t, "contacts.csv", "20,2,3\n10,0,1\n15,1,2\n")

	events, err := LoadContacts(path)
	if err != nil {
		t.Fatalf("encountered error while loading contacts: %s", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, instead got %d", len(events))
	}
	want := []int64{10, 15, 20}
	for i, ev := range events {
		if ev.Timestamp != want[i] {
			t.Errorf("expected timestamp at index %d to be %d, instead got %d", i, want[i], ev.Timestamp)
		}
	}
	if events[0].U != 0 || events[0].V != 1 {
		t.Errorf("expected first sorted event to be (0,1), instead got (%d,%d)", events[0].U, events[0].V)
	}
}

func TestLoadContacts_RejectsMalformedRows(t *testing.T) {
	path := writeFixture(t, "contacts.csv", "10,0,1\nnotanumber,1,2\n")

	if _, err := LoadContacts(path); err == nil {
		t.Fatal("expected an error while loading a malformed contact row, instead got none")
	}
}

func TestLoadContacts_MissingFile(t *testing.T) {
	if _, err := LoadContacts(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected an error while opening a missing contact file, instead got none")
	}
}
