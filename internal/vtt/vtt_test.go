package vtt

import (
	"strings"
	"testing"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: en

1
00:00:00.000 --> 00:00:03.000
This is the first subtitle

2
00:00:04.000 --> 00:00:07.000
This is the second <b>subtitle</b>

3
00:00:08.000 --> 00:00:11.000
This is the third subtitle
`

// --- Tests pour Normalize --------------------------------------------------

func TestNormalize_StripsTagsAndKeepsText(t *testing.T) {
	got := Normalize(sampleVTT)

	if strings.Contains(got, "<b>") || strings.Contains(got, "</b>") {
		t.Errorf("balises résiduelles dans la sortie : %q", got)
	}
	for _, want := range []string{
		"This is the first subtitle",
		"This is the second subtitle",
		"This is the third subtitle",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ligne manquante %q dans :\n%s", want, got)
		}
	}
	// l'en-tête et les métadonnées ne doivent pas fuir
	for _, banned := range []string{"WEBVTT", "Kind:", "Language:", "-->"} {
		if strings.Contains(got, banned) {
			t.Errorf("métadonnée %q présente dans la sortie :\n%s", banned, got)
		}
	}
}

func TestNormalize_OneMarkerPerMinute(t *testing.T) {
	// trois cues dans la même minute => exactement un marqueur, placé
	// avant le texte du premier cue
	got := Normalize(sampleVTT)
	lines := strings.Split(got, "\n")

	var markers []int
	for i, l := range lines {
		if strings.HasPrefix(l, "[") && strings.HasSuffix(l, "]") {
			markers = append(markers, i)
		}
	}
	if len(markers) != 1 {
		t.Fatalf("markers = %d; want 1 (sortie :\n%s)", len(markers), got)
	}
	if lines[markers[0]] != "[00:00:00]" {
		t.Errorf("marqueur = %q; want %q", lines[markers[0]], "[00:00:00]")
	}
	if markers[0] != 0 {
		t.Errorf("le marqueur doit précéder le premier texte (position %d)", markers[0])
	}
}

func TestNormalize_MarkerPerDistinctMinute(t *testing.T) {
	raw := `WEBVTT

00:00:58.000 --> 00:01:00.000
fin de la première minute

00:01:02.000 --> 00:01:05.000
début de la deuxième

00:01:30.000 --> 00:01:33.000
toujours la deuxième
`
	got := Normalize(raw)
	want := "[00:00:58]\nfin de la première minute\n[00:01:02]\ndébut de la deuxième\ntoujours la deuxième"
	if got != want {
		t.Errorf("Normalize =\n%q\nwant\n%q", got, want)
	}
}

// Limitation assumée : passage d'heure à minute égale, pas de nouveau
// marqueur (la comparaison porte sur les digits de la minute seulement).
func TestNormalize_HourRolloverSameMinute(t *testing.T) {
	raw := `WEBVTT

00:05:00.000 --> 00:05:02.000
avant le rollover

01:05:00.000 --> 01:05:02.000
après le rollover
`
	got := Normalize(raw)
	if strings.Contains(got, "[01:05:00]") {
		t.Errorf("marqueur émis malgré une minute identique :\n%s", got)
	}
	if !strings.Contains(got, "[00:05:00]") {
		t.Errorf("marqueur initial absent :\n%s", got)
	}
}

func TestNormalize_DeduplicatesConsecutiveRepeats(t *testing.T) {
	// YouTube ré-émet la même ligne sur des cues superposés
	raw := `WEBVTT

00:00:00.000 --> 00:00:02.000
hello world

00:00:02.000 --> 00:00:04.000
hello world

00:00:04.000 --> 00:00:06.000
hello world

00:00:06.000 --> 00:00:08.000
something else

00:00:08.000 --> 00:00:10.000
hello world
`
	got := Normalize(raw)
	lines := strings.Split(got, "\n")

	// pas deux lignes de texte consécutives identiques
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" && lines[i] == lines[i-1] {
			t.Errorf("lignes consécutives identiques en %d : %q", i, lines[i])
		}
	}
	// dédoublonnage à un cran : la ré-émission APRÈS un autre texte est conservée
	count := strings.Count(got, "hello world")
	if count != 2 {
		t.Errorf("occurrences de %q = %d; want 2 (sortie :\n%s)", "hello world", count, got)
	}
}

func TestNormalize_SkipsCueIndices(t *testing.T) {
	got := Normalize(sampleVTT)
	for _, l := range strings.Split(got, "\n") {
		if l == "1" || l == "2" || l == "3" {
			t.Errorf("index de cue présent dans la sortie : %q", l)
		}
	}
}

func TestNormalize_TagOnlyLineDropped(t *testing.T) {
	raw := `WEBVTT

00:00:00.000 --> 00:00:02.000
<c.colorE5E5E5></c>

00:00:02.000 --> 00:00:04.000
du texte <00:00:03.000>avec timing inline
`
	got := Normalize(raw)
	want := "[00:00:00]\ndu texte avec timing inline"
	if got != want {
		t.Errorf("Normalize = %q; want %q", got, want)
	}
}

func TestNormalize_TotalFunction(t *testing.T) {
	// entrée malformée ou vide : résultat dégradé, jamais de panique
	for _, in := range []string{"", "pas du vtt", "--> tout seul", "00:00 --> 00:01"} {
		_ = Normalize(in)
	}
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q; want \"\"", got)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	first := Normalize(sampleVTT)
	for i := 0; i < 5; i++ {
		if got := Normalize(sampleVTT); got != first {
			t.Fatalf("sortie non déterministe à l'itération %d", i)
		}
	}
}
