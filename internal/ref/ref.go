// Package ref implémente la grammaire de l'argument du loader :
// [lang:]url-ou-id. La reconnaissance d'URL est volontairement étroite
// (comparaison de hosts, rien de plus) pour garder un comportement
// d'acceptation/rejet prévisible.
package ref

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/patrickprogramme/ytfragments/pkg/model"
)

// ErrInvalidReference signale un argument qui ne peut pas être résolu en
// identifiant vidéo. Jamais réessayé, remonté tel quel à l'appelant.
var ErrInvalidReference = errors.New("référence vidéo invalide")

const (
	hostFull      = "www.youtube.com"
	hostFullNoWWW = "youtube.com"
	hostShort     = "youtu.be"
)

// Parse extrait (video_id, langue) d'un argument brut.
//
// Formes acceptées :
//   - dQw4w9WgXcQ
//   - en:dQw4w9WgXcQ
//   - https://www.youtube.com/watch?v=dQw4w9WgXcQ
//   - es:https://www.youtube.com/watch?v=dQw4w9WgXcQ
//   - https://youtu.be/dQw4w9WgXcQ (avec ou sans préfixe de langue)
//
// La langue reste vide si aucun préfixe n'était présent : c'est
// l'orchestrateur qui substitue "en" pour la requête, pas le parseur.
func Parse(argument string) (model.VideoRef, error) {
	var lang string

	// préfixe de langue : "lang:reste", sauf si l'argument est déjà une URL
	if strings.Contains(argument, ":") && !strings.HasPrefix(argument, "http") {
		parts := strings.SplitN(argument, ":", 2)
		lang = parts[0]
		argument = parts[1]
	}

	id, err := parseVideoID(argument)
	if err != nil {
		return model.VideoRef{}, err
	}
	return model.VideoRef{ID: id, Lang: lang}, nil
}

// parseVideoID applique les règles 2 à 5 de la grammaire (URL complète,
// URL courte, autre host = rejet, sinon ID nu).
func parseVideoID(argument string) (string, error) {
	u, err := url.Parse(argument)
	if err != nil {
		if strings.HasPrefix(argument, "http") {
			// prétend être une URL mais n'en est pas une : rejet
			return "", fmt.Errorf("%w : URL mal formée : %s", ErrInvalidReference, argument)
		}
		return bareID(argument)
	}

	switch u.Host {
	case hostFull, hostFullNoWWW:
		// URL de visionnage : le paramètre v est obligatoire
		id := u.Query().Get("v")
		if id == "" {
			return "", fmt.Errorf("%w : URL YouTube sans paramètre v : %s", ErrInvalidReference, argument)
		}
		return id, nil

	case hostShort:
		// lien court : l'ID est le premier segment du chemin
		path := strings.TrimPrefix(u.Path, "/")
		if i := strings.IndexByte(path, '/'); i >= 0 {
			path = path[:i]
		}
		if path == "" {
			return "", fmt.Errorf("%w : lien court sans identifiant : %s", ErrInvalidReference, argument)
		}
		return path, nil

	default:
		if u.Host != "" {
			// host non-YouTube : rejet explicite
			return "", fmt.Errorf("%w : URL non supportée : %s", ErrInvalidReference, argument)
		}
		return bareID(argument)
	}
}

// bareID traite l'argument comme un identifiant nu, en retirant une
// éventuelle query string résiduelle ("abc?si=xyz" -> "abc").
func bareID(argument string) (string, error) {
	id := argument
	if i := strings.IndexByte(id, '?'); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return "", fmt.Errorf("%w : identifiant vidéo vide", ErrInvalidReference)
	}
	return id, nil
}
