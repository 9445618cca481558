package vocab

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("csv", func(t *testing.T) {
		path := filepath.Join(tmpDir, "words.csv")
		os.WriteFile(path, []byte("English,Chinese Meanings\nrun,跑"), 0644)

		got, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if len(got) != 1 || got[0].English != "run" {
			t.Errorf("got %+v, want one record for run", got)
		}
	})

	t.Run("tsv", func(t *testing.T) {
		path := filepath.Join(tmpDir, "words.tsv")
		os.WriteFile(path, []byte("English\tChinese Meanings\nwalk\t走, 慢走"), 0644)

		got, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if len(got) != 1 || got[0].Chinese != "走, 慢走" {
			t.Errorf("got %+v, want one record with comma kept", got)
		}
	})

	t.Run("unknown extension falls back to csv", func(t *testing.T) {
		path := filepath.Join(tmpDir, "words.txt")
		os.WriteFile(path, []byte("English,Chinese Meanings\nrun,跑"), 0644)

		got, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("got %d records, want 1", len(got))
		}
	})

	t.Run("nonexistent file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(tmpDir, "nonexistent.csv"))
		if err == nil {
			t.Error("expected error")
		}
	})
}

func TestSupportedSources(t *testing.T) {
	sources := SupportedSources()
	if len(sources) == 0 {
		t.Fatal("no sources registered")
	}
	for _, s := range sources {
		if s == "CSV (.csv)" {
			return
		}
	}
	t.Errorf("CSV not registered: %v", sources)
}
