package yt

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/patrickprogramme/ytfragments/pkg/model"
)

// NewYtDlp construit une instance. Path doit être le chemin résolu vers l'exe
func NewYtDlp(name string, resolvedPath string, cfg YtDlpConfig) *YtDlp {
	return &YtDlp{
		Name:   name,
		Path:   resolvedPath,
		Config: cfg,
	}
}

// CheckBinary vérifie que le binaire spécifié existe et est exécutable.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	exe := y.Path
	if exe == "" {
		fmt.Println("CheckBinary: fallback sur y.Name")
		exe = y.Name // fallback : essayer le nom si pas de path résolu
	}

	info, err := os.Stat(exe)
	if err != nil {
		return fmt.Errorf("yt-dlp introuvable (%s) à l'emplacement spécifié : %v", exe, err)
	}

	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire, pas un fichier exécutable")
	}

	return nil
}

// FetchSubtitles exécute yt-dlp dans un répertoire scratch exclusif à
// l'appel, lit les fichiers .vtt produits puis libère le scratch quoi
// qu'il arrive (succès, résultat vide ou erreur).
//
// Erreur non-nil = échec d'exécution de yt-dlp (sortie combinée incluse
// pour le diagnostic). Une liste vide sans erreur = aucune piste produite.
func (y *YtDlp) FetchSubtitles(ctx context.Context, videoID, lang string, source model.SubSource) ([]model.CaptionFile, error) {
	scratch, err := os.MkdirTemp("", "ytfragments-*")
	if err != nil {
		return nil, fmt.Errorf("création du répertoire scratch : %w", err)
	}
	defer os.RemoveAll(scratch)

	outputTpl := filepath.Join(scratch, "%(id)s.%(ext)s")
	url := model.VideoRef{ID: videoID}.WatchURL()
	args := y.Config.BuildSubtitleArgs(source, lang, outputTpl, url)

	cmd := exec.CommandContext(ctx, y.exe(), args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp subtitle download failed: %w, output: %s", err, string(out))
	}

	return collectVTTFiles(scratch)
}

// collectVTTFiles liste les .vtt du scratch, triés lexicographiquement
// par nom de fichier pour un choix déterministe (l'ordre de listing du
// filesystem ne l'est pas), et lit leur contenu avant libération.
func collectVTTFiles(scratch string) ([]model.CaptionFile, error) {
	entries, err := os.ReadDir(scratch)
	if err != nil {
		return nil, fmt.Errorf("lecture du répertoire scratch : %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), model.FormatVTT.Extension()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	files := make([]model.CaptionFile, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(scratch, name))
		if err != nil {
			return nil, fmt.Errorf("lecture du fichier de sous-titres %s : %w", name, err)
		}
		files = append(files, model.CaptionFile{
			Name:   name,
			Format: model.FormatVTT,
			Data:   data,
		})
	}
	return files, nil
}
