package store

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := s.BestScore(); got != 0 {
		t.Fatalf("best: got %d want 0", got)
	}
}

func TestSaveAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "scores.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.SaveBestScore(40); err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := again.BestScore(); got != 40 {
		t.Fatalf("best after reopen: got %d want 40", got)
	}
}

func TestSaveBestScoreNeverLowers(t *testing.T) {
	s, _ := Open(filepath.Join(t.TempDir(), "scores.json"))
	if err := s.SaveBestScore(30); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveBestScore(20); err != nil {
		t.Fatal(err)
	}
	if got := s.BestScore(); got != 30 {
		t.Fatalf("best: got %d want 30", got)
	}
}

func TestMalformedValuesReadAsZero(t *testing.T) {
	cases := map[string]string{
		"not json":   `{{{`,
		"array":      `[1,2]`,
		"bad string": `{"bestScore":"ten"}`,
		"negative":   `{"bestScore":-5}`,
		"object":     `{"bestScore":{"v":1}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scores.json")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			s, _ := Open(path)
			if got := s.BestScore(); got != 0 {
				t.Fatalf("best: got %d want 0", got)
			}
		})
	}
}

func TestStringValueAccepted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte(`{"bestScore":"70"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got := s.BestScore(); got != 70 {
		t.Fatalf("best: got %d want 70", got)
	}
}

func TestOtherKeysSurviveWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte(`{"other":"x","bestScore":5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, _ := Open(path)
	if err := s.SaveBestScore(15); err != nil {
		t.Fatal(err)
	}
	again, _ := Open(path)
	again.mu.Lock()
	_, ok := again.data["other"]
	again.mu.Unlock()
	if !ok {
		t.Fatalf("unrelated key dropped on write")
	}
}

func TestSavedFileIsWorldReadable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	path := filepath.Join(t.TempDir(), "scores.json")
	s, _ := Open(path)
	if err := s.SaveBestScore(10); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o644 {
		t.Fatalf("mode: got %o want 644", got)
	}
}
