package app

import (
	"os"
	"strings"
	"testing"

	"github.com/patrickprogramme/ytfragments/pkg/model"
)

// --- Tests pour applyLangPrefix --------------------------------------------

func TestApplyLangPrefix(t *testing.T) {
	tests := []struct {
		name     string
		argument string
		flagLang string
		cfgLang  string
		want     string
	}{
		{
			name:     "aucune langue",
			argument: "dQw4w9WgXcQ",
			want:     "dQw4w9WgXcQ",
		},
		{
			name:     "flag ajouté en préfixe",
			argument: "dQw4w9WgXcQ",
			flagLang: "es",
			want:     "es:dQw4w9WgXcQ",
		},
		{
			name:     "config utilisée sans flag",
			argument: "dQw4w9WgXcQ",
			cfgLang:  "fr",
			want:     "fr:dQw4w9WgXcQ",
		},
		{
			name:     "flag prime sur la config",
			argument: "dQw4w9WgXcQ",
			flagLang: "es",
			cfgLang:  "fr",
			want:     "es:dQw4w9WgXcQ",
		},
		{
			name:     "préfixe existant conservé",
			argument: "de:dQw4w9WgXcQ",
			flagLang: "es",
			want:     "de:dQw4w9WgXcQ",
		},
		{
			name:     "URL préfixée par le flag",
			argument: "https://youtu.be/dQw4w9WgXcQ",
			flagLang: "es",
			want:     "es:https://youtu.be/dQw4w9WgXcQ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := applyLangPrefix(tc.argument, tc.flagLang, tc.cfgLang)
			if got != tc.want {
				t.Errorf("applyLangPrefix(%q, %q, %q) = %q; want %q",
					tc.argument, tc.flagLang, tc.cfgLang, got, tc.want)
			}
		})
	}
}

// --- Tests pour SaveFragment -----------------------------------------------

func TestSaveFragment(t *testing.T) {
	outDir := t.TempDir()
	fragment := model.Fragment{
		Content: "[00:00:00]\nhello",
		Source:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}

	path, err := SaveFragment(fragment, "es:dQw4w9WgXcQ", outDir)
	if err != nil {
		t.Fatalf("SaveFragment: %v", err)
	}
	if !strings.HasSuffix(path, "dQw4w9WgXcQ.txt") {
		t.Errorf("path = %q; want suffixe dQw4w9WgXcQ.txt (nom basé sur l'ID)", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != fragment.Content {
		t.Errorf("contenu = %q; want %q", data, fragment.Content)
	}

	// collision : le deuxième enregistrement prend un suffixe
	path2, err := SaveFragment(fragment, "es:dQw4w9WgXcQ", outDir)
	if err != nil {
		t.Fatalf("SaveFragment (collision): %v", err)
	}
	if path2 == path {
		t.Errorf("collision non gérée : %q == %q", path2, path)
	}
}

func TestSaveFragment_EmptyContent(t *testing.T) {
	_, err := SaveFragment(model.Fragment{}, "dQw4w9WgXcQ", t.TempDir())
	if err == nil {
		t.Fatal("erreur attendue pour un fragment vide")
	}
}
