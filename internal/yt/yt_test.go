package yt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/patrickprogramme/ytfragments/pkg/model"
)

// --- Tests pour BuildSubtitleArgs ------------------------------------------

func TestBuildSubtitleArgs_Manual(t *testing.T) {
	cfg := NewYtDlpConfig(false)
	args := cfg.BuildSubtitleArgs(model.SubSourceManual, "en", "/tmp/scratch/%(id)s.%(ext)s", "https://www.youtube.com/watch?v=X")

	want := []string{
		"--no-config",
		"--skip-download",
		"--write-sub",
		"--sub-format", "vtt",
		"--sub-lang", "en",
		"-o", "/tmp/scratch/%(id)s.%(ext)s",
		"--no-warnings",
		"--no-progress",
		"--no-update",
		"https://www.youtube.com/watch?v=X",
	}
	if len(args) != len(want) {
		t.Fatalf("args = %v; want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q; want %q", i, args[i], want[i])
		}
	}
}

func TestBuildSubtitleArgs_Automatic(t *testing.T) {
	cfg := NewYtDlpConfig(true) // show warnings => pas de --no-warnings
	args := cfg.BuildSubtitleArgs(model.SubSourceAutomatic, "es", "tpl", "url")

	has := func(flag string) bool {
		for _, a := range args {
			if a == flag {
				return true
			}
		}
		return false
	}

	if !has("--write-auto-sub") {
		t.Errorf("--write-auto-sub absent : %v", args)
	}
	if has("--write-sub") {
		t.Errorf("--write-sub présent pour la source automatique : %v", args)
	}
	if has("--no-warnings") {
		t.Errorf("--no-warnings présent malgré showWarning=true : %v", args)
	}
	// l'URL est toujours le dernier argument
	if args[len(args)-1] != "url" {
		t.Errorf("dernier argument = %q; want %q", args[len(args)-1], "url")
	}
}

// --- Tests pour collectVTTFiles --------------------------------------------

func TestCollectVTTFiles_SortedAndRead(t *testing.T) {
	scratch := t.TempDir()

	// créés dans le désordre : la collecte doit trier lexicographiquement
	files := map[string]string{
		"X.en.vtt":    "contenu en",
		"X.de.vtt":    "contenu de",
		"X.info.json": "ignoré",
		"X.en-GB.vtt": "contenu en-GB",
		"notes.txt":   "ignoré aussi",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(scratch, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := collectVTTFiles(scratch)
	if err != nil {
		t.Fatalf("collectVTTFiles: %v", err)
	}

	wantNames := []string{"X.de.vtt", "X.en-GB.vtt", "X.en.vtt"}
	if len(got) != len(wantNames) {
		t.Fatalf("fichiers = %d; want %d (%v)", len(got), len(wantNames), got)
	}
	for i, name := range wantNames {
		if got[i].Name != name {
			t.Errorf("got[%d].Name = %q; want %q", i, got[i].Name, name)
		}
		if got[i].Format != model.FormatVTT {
			t.Errorf("got[%d].Format = %v; want vtt", i, got[i].Format)
		}
	}
	// contenu lu avant libération du scratch
	if string(got[0].Data) != "contenu de" {
		t.Errorf("got[0].Data = %q; want %q", got[0].Data, "contenu de")
	}
}

func TestCollectVTTFiles_Empty(t *testing.T) {
	got, err := collectVTTFiles(t.TempDir())
	if err != nil {
		t.Fatalf("collectVTTFiles: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("fichiers = %d; want 0", len(got))
	}
}

// --- Tests pour CheckBinary ------------------------------------------------

func TestCheckBinary(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "yt-dlp")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "binaire présent", path: exe, wantErr: false},
		{name: "binaire absent", path: filepath.Join(dir, "missing"), wantErr: true},
		{name: "répertoire au lieu d'un fichier", path: dir, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			y := NewYtDlp("yt-dlp", tc.path, *NewYtDlpConfig(false))
			err := y.CheckBinary()
			if tc.wantErr && err == nil {
				t.Fatal("erreur attendue, obtenu nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("erreur inattendue : %v", err)
			}
		})
	}
}
