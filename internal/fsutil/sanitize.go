package fsutil

import (
	"regexp"
	"strings"
)

// limite de longueur de la chaine
const max = 200

// invalidFileRunes définit les caractères interdits dans les noms de fichiers
// \x00-\x1F sont les caractères de contrôle
var invalidFileRunes = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// multiSpace détecte les séquences de plusieurs espaces pour les réduire à un seul.
var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeFilename nettoie une chaîne (ID vidéo, préfixe de langue...) pour
// en faire un nom de fichier valide :
// - remplace les caractères interdits par un espace
// - réduit les espaces superflus
// - limite la longueur
// - fournit un nom par défaut si la chaîne est vide
func SanitizeFilename(name string) string {
	if name == "" {
		return "fragment"
	}

	clean := invalidFileRunes.ReplaceAllString(name, " ")
	clean = strings.TrimSpace(clean)
	clean = multiSpace.ReplaceAllString(clean, " ")

	// suppression des points terminaux (un ou plusieurs)
	clean = strings.TrimRight(clean, ".")

	if clean == "" {
		return "fragment"
	}
	if len(clean) > max {
		clean = clean[:max]
	}
	return clean
}
