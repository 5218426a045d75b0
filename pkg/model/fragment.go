package model

import "fmt"

const watchURLBase = "https://www.youtube.com/watch?v="

// VideoRef est la référence vidéo issue du parsing de l'argument.
// Lang vide = non fourni par l'appelant (l'orchestrateur substituera "en"
// pour la requête, mais PAS dans l'URL source).
type VideoRef struct {
	ID   string
	Lang string
}

// WatchURL retourne l'URL canonique de visionnage, sans suffixe de langue.
func (r VideoRef) WatchURL() string {
	return watchURLBase + r.ID
}

// SourceURL retourne l'identifiant de provenance du fragment : l'URL
// canonique, suffixée de cc_lang_pref uniquement si la langue a été
// explicitement fournie.
func (r VideoRef) SourceURL() string {
	if r.Lang != "" {
		return r.WatchURL() + "&cc_lang_pref=" + r.Lang
	}
	return r.WatchURL()
}

func (r VideoRef) String() string {
	if r.Lang != "" {
		return fmt.Sprintf("VideoRef(id=%s, lang=%s)", r.ID, r.Lang)
	}
	return fmt.Sprintf("VideoRef(id=%s)", r.ID)
}

// Fragment est le contrat de sortie du loader : texte nettoyé + provenance.
// Immuable une fois construit, consommé tel quel par l'hôte.
type Fragment struct {
	Content string
	Source  string
}

func (f Fragment) String() string {
	return fmt.Sprintf("Fragment[source=%s, %d octets]", f.Source, len(f.Content))
}
