package yt

import "fmt"

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin) + config.
type YtDlp struct {
	Name   string
	Path   string // chemin vers l'exe
	Config YtDlpConfig
}

func (y YtDlp) ShowPath() {
	fmt.Println("yt-dlp path:", y.Path)
}

// exe retourne le chemin résolu, ou le nom du binaire en fallback
// (résolution via PATH lors de l'exécution).
func (y *YtDlp) exe() string {
	if y.Path != "" {
		return y.Path
	}
	return y.Name
}
