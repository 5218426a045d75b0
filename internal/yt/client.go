package yt

import (
	"context"

	"github.com/patrickprogramme/ytfragments/pkg/model"
)

// Interface est l'abstraction utilisée par l'application. Elle facilite le test
// en autorisant une implémentation factice dans les tests.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)

	// FetchSubtitles lance yt-dlp pour télécharger les sous-titres de la
	// vidéo dans un répertoire scratch propre à l'appel, et retourne les
	// fichiers .vtt obtenus (triés par nom, contenu déjà lu). Une liste
	// vide SANS erreur signifie : exécution réussie mais aucune piste
	// disponible pour cette source/langue.
	FetchSubtitles(ctx context.Context, videoID, lang string, source model.SubSource) ([]model.CaptionFile, error)
}
