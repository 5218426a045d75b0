package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/patrickprogramme/ytfragments/internal/clipboard"
	"github.com/patrickprogramme/ytfragments/internal/fsutil"
	"github.com/patrickprogramme/ytfragments/internal/ref"
	"github.com/patrickprogramme/ytfragments/internal/updater"
	"github.com/patrickprogramme/ytfragments/pkg/model"
)

// SaveFragment écrit le contenu du fragment dans outDir sous
// <video_id>.txt (écriture atomique, suffixe _1, _2... en cas de collision).
// Retourne le chemin final.
func SaveFragment(fragment model.Fragment, argument, outDir string) (string, error) {
	if fragment.Content == "" {
		return "", fmt.Errorf("SaveFragment: fragment vide, rien à sauvegarder")
	}

	// nom de fichier basé sur l'ID vidéo ; fallback sur l'argument brut
	baseName := argument
	if videoRef, err := ref.Parse(argument); err == nil {
		baseName = videoRef.ID
	}
	baseName = fsutil.SanitizeFilename(baseName)

	path, err := fsutil.SaveTextAtomic(outDir, baseName, model.FormatTXT.Extension(), []byte(fragment.Content), false)
	if err != nil {
		return "", fmt.Errorf("write fragment: %w", err)
	}
	return path, nil
}

// CopyFragment copie le texte du fragment dans le presse-papier.
func CopyFragment(fragment model.Fragment) error {
	if fragment.Content == "" {
		return fmt.Errorf("CopyFragment: fragment vide")
	}
	return clipboard.WriteAll(fragment.Content)
}

// YtDlpUpdateCheck compare la version locale de yt-dlp à la dernière
// release GitHub et affiche un lien de téléchargement si besoin.
func (a App) YtDlpUpdateCheck(ctx context.Context, timeout time.Duration, version string) error {
	uc, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	check, err := updater.CheckYtDlpUpdate(uc, version)
	if err != nil {
		return fmt.Errorf("vérification de mise à jour a échoué : %v", err)
	}

	if check.IsUpToDate {
		a.ui.PrintInfo(ctx, fmt.Sprintf("✅ yt-dlp est à jour (%s)", check.CurrentVersion))
		return nil
	}

	a.ui.PrintInfo(ctx, "⚠️ Nouvelle version de Yt-dlp disponible :")
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Installée : %s", check.CurrentVersion))
	a.ui.PrintInfo(ctx, fmt.Sprintf("  Dernière  : %s", check.LatestRelease.TagName))
	a.ui.PrintInfo(ctx, "Téléchargez-la ici:")
	a.ui.PrintInfo(ctx, check.GetUpdateLink(runtime.GOOS))

	return nil
}
