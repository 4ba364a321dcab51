package ingest

import (
	"path/filepath"
	"testing"
)

func TestLoadCommunity_ParsesIdZonePairs(t *testing.T) {
	path := writeFixture(t, "community.csv", "0,0\n1,0\n2,1\n")

	community, err := LoadCommunity(path)
	if err != nil {
		t.Fatalf("encountered error while loading community: %s", err)
	}
	if len(community) != 3 {
		t.Fatalf("expected 3 community entries, instead got %d", len(community))
	}
	if community[2] != 1 {
		t.Errorf("expected zone for id 2 to be 1, instead got %d", community[2])
	}
}

func TestLoadCommunity_RejectsMalformedRows(t *testing.T) {
	path := writeFixture(t, "community.csv", "0,0\n1,notanumber\n")

	if _, err := LoadCommunity(path); err == nil {
		t.Fatal("expected an error while loading a malformed community row, instead got none")
	}
}

func TestLoadCommunity_MissingFile(t *testing.T) {
	if _, err := LoadCommunity(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected an error while opening a missing community file, instead got none")
	}
}
