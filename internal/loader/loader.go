// Package loader orchestre le chargement d'un fragment : parsing de
// l'argument, récupération des sous-titres via le fetcher externe (manuels
// puis repli sur les captions automatiques), normalisation VTT et
// construction de l'identifiant source.
package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/patrickprogramme/ytfragments/internal/ref"
	"github.com/patrickprogramme/ytfragments/internal/vtt"
	"github.com/patrickprogramme/ytfragments/internal/yt"
	"github.com/patrickprogramme/ytfragments/pkg/model"
)

const defaultLang = "en"

// ErrFetch : yt-dlp a échoué (exit non-zéro / transport). Pas de repli sur
// les captions automatiques dans ce cas : le repli ne vaut que pour un
// résultat vide, pas pour une erreur dure.
var ErrFetch = errors.New("échec du téléchargement des sous-titres")

// ErrNoSubtitles : le fetcher a tourné sans erreur (deux fois) mais n'a
// produit aucune piste. Terminal.
var ErrNoSubtitles = errors.New("aucun sous-titre disponible")

// Loader charge des fragments de sous-titres YouTube.
// Chaque appel à Load est indépendant ; sûr en concurrence tant que le
// fetcher utilise un scratch propre à l'appel (ce que fait internal/yt).
type Loader struct {
	fetcher yt.Interface
}

func New(fetcher yt.Interface) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load résout l'argument en fragment : texte nettoyé + URL de provenance.
//
// Erreurs possibles, toutes terminales :
//   - ref.ErrInvalidReference (argument malformé, remonté tel quel) ;
//   - ErrFetch (échec d'exécution de yt-dlp, diagnostic dans la chaîne) ;
//   - ErrNoSubtitles (vidéo résolue mais aucune piste, ID et langue
//     dans le message).
func (l *Loader) Load(ctx context.Context, argument string) (model.Fragment, error) {
	videoRef, err := ref.Parse(argument)
	if err != nil {
		return model.Fragment{}, err
	}

	// langue effective pour la requête ; la langue du ref reste vide si
	// l'appelant n'a rien fourni (elle conditionne le suffixe de l'URL source)
	lang := videoRef.Lang
	if lang == "" {
		lang = defaultLang
	}

	// sous-titres manuels d'abord, captions auto en repli — une seule
	// boucle sur l'ordre des sources pour éviter deux sites d'appel
	var files []model.CaptionFile
	for _, source := range model.FetchOrder {
		files, err = l.fetcher.FetchSubtitles(ctx, videoRef.ID, lang, source)
		if err != nil {
			return model.Fragment{}, fmt.Errorf("%w : %v", ErrFetch, err)
		}
		if len(files) > 0 {
			break
		}
	}

	if len(files) == 0 {
		if videoRef.Lang != "" {
			return model.Fragment{}, fmt.Errorf("%w pour la vidéo %s en langue %s", ErrNoSubtitles, videoRef.ID, videoRef.Lang)
		}
		return model.Fragment{}, fmt.Errorf("%w pour la vidéo %s", ErrNoSubtitles, videoRef.ID)
	}

	// premier fichier de la liste (déjà triée par le fetcher)
	content := vtt.Normalize(string(files[0].Data))

	return model.Fragment{
		Content: content,
		Source:  videoRef.SourceURL(),
	}, nil
}
