package yt

import "github.com/patrickprogramme/ytfragments/pkg/model"

// YtDlpConfig représente les flags ajoutables quand on utilise yt-dlp
type YtDlpConfig struct {
	NoWarnings bool // true => ajouter --no-warnings
	NoProgress bool
	NoUpdate   bool
	NoConfig   bool // true => ajouter --no-config pour ignorer les configs utilisateur
}

// NewYtDlpConfig initalise une configuration standard de yt-dlp, showWarning vient du yaml de config
func NewYtDlpConfig(showWarning bool) *YtDlpConfig {
	return &YtDlpConfig{
		NoWarnings: !showWarning,
		NoProgress: true,
		NoUpdate:   true,
		NoConfig:   true, // valeur par défaut : ignorer les fichiers de config extérieurs (plus prévisible)
	}
}

// BuildSubtitleArgs construit la slice des arguments pour un téléchargement
// de sous-titres seuls : jamais la vidéo (--skip-download), format vtt,
// langue imposée, sortie dans le template outputTpl du répertoire scratch.
// source choisit entre --write-sub (manuels) et --write-auto-sub (auto).
func (c *YtDlpConfig) BuildSubtitleArgs(source model.SubSource, lang, outputTpl, url string) []string {
	args := make([]string, 0, 14)
	// mettre --no-config en tête pour éviter que des configs locales/modifient le comportement
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	args = append(args, "--skip-download")
	if source == model.SubSourceAutomatic {
		args = append(args, "--write-auto-sub")
	} else {
		args = append(args, "--write-sub")
	}
	args = append(args, "--sub-format", "vtt")
	args = append(args, "--sub-lang", lang)
	args = append(args, "-o", outputTpl)
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if c.NoUpdate {
		args = append(args, "--no-update")
	}
	args = append(args, url)
	return args
}
