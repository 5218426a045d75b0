// Package vtt normalise une piste de sous-titres WebVTT en texte brut :
// suppression du balisage, dédoublonnage des lignes répétées par YouTube
// sur des cues consécutifs, et réinsertion de marqueurs temporels épars
// pour que le texte reste navigable dans le temps.
package vtt

import (
	"regexp"
	"strings"
)

// timestampRe capture la composante HH:MM:SS du début d'une ligne de timing
// (la précision sub-seconde et le temps de fin sont ignorés).
var timestampRe = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})`)

// tagRe reconnaît le balisage inline (<b>, <c.color>, <00:00:01.500>, ...).
// Le retrait est purement syntaxique : tout span <...> est traité pareil.
var tagRe = regexp.MustCompile(`<[^>]+>`)

// Normalize transforme le contenu brut d'un fichier VTT en texte nettoyé.
// Fonction totale : une entrée malformée dégrade en résultat vide ou
// partiel, jamais en erreur. Déterministe : même entrée, même sortie.
//
// Règles :
//   - l'en-tête WEBVTT et les lignes Kind:/Language: sont ignorés ;
//   - un marqueur [HH:MM:SS] est émis à chaque changement de la composante
//     minute du timestamp de début, une seule fois par valeur rencontrée ;
//   - les index numériques de cue sont ignorés ;
//   - une ligne de texte identique à la dernière ligne émise est supprimée
//     (dédoublonnage à un cran, pas un ensemble global : YouTube ré-émet
//     la même ligne sur 2-3 cues superposés).
//
// Limitation assumée : la détection de changement de minute ne regarde que
// les digits de la minute, donc un passage d'heure à minute égale
// (00:05:00 puis 01:05:00) n'émet pas de nouveau marqueur.
func Normalize(raw string) string {
	var (
		out        []string
		prevText   string
		hasPrev    bool
		lastMinute = -1
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		// lignes vides, bannière et métadonnées
		if line == "" ||
			strings.HasPrefix(line, "WEBVTT") ||
			strings.HasPrefix(line, "Kind:") ||
			strings.HasPrefix(line, "Language:") {
			continue
		}

		// ligne de timing : "00:00:01.000 --> 00:00:03.000 ..."
		if strings.Contains(line, "-->") {
			if m := timestampRe.FindStringSubmatch(line); m != nil {
				minute := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
				if minute != lastMinute {
					out = append(out, "["+m[1]+":"+m[2]+":"+m[3]+"]")
					lastMinute = minute
				}
			}
			continue
		}

		// index séquentiel de cue
		if isAllDigits(line) {
			continue
		}

		// ligne de texte : retirer le balisage puis dédoublonner
		clean := tagRe.ReplaceAllString(line, "")
		if strings.TrimSpace(clean) == "" {
			continue
		}
		if hasPrev && clean == prevText {
			continue
		}
		out = append(out, clean)
		prevText = clean
		hasPrev = true
	}

	return strings.Join(out, "\n")
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
