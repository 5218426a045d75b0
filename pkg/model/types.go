package model

import "fmt"

// SubSource représente la provenance d'une piste de sous-titres.
// automatic = généré automatiquement par Youtube (ASR)
// manual = fourni par l'auteur de la vidéo
type SubSource string

const (
	SubSourceUnknown   SubSource = "unknown"
	SubSourceAutomatic SubSource = "automatic"
	SubSourceManual    SubSource = "manual"
)

func (s SubSource) String() string {
	switch s {
	case SubSourceAutomatic:
		return "auto captions"
	case SubSourceManual:
		return "manual subtitles"
	default:
		return "unknown subtitles"
	}
}

// FetchOrder est l'ordre des tentatives de récupération : sous-titres
// manuels d'abord, puis repli sur les captions automatiques.
var FetchOrder = []SubSource{SubSourceManual, SubSourceAutomatic}

// constantes pour les formats de fichiers
type Format string

const (
	FormatTXT Format = "txt"
	FormatVTT Format = "vtt"
)

// du format en chaine à la constante de type Format, return une erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch s {
	case "txt":
		return FormatTXT, nil
	case "vtt":
		return FormatVTT, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) String() string {
	return string(f)
}

// CaptionFile est une piste de sous-titres produite par le fetcher.
// Data est lu AVANT la libération du répertoire scratch : le fichier
// d'origine n'existe plus quand la valeur est consommée.
type CaptionFile struct {
	Name   string // nom de fichier dans le scratch (ex: "dQw4w9WgXcQ.en.vtt")
	Format Format
	Data   []byte
}

func (c CaptionFile) String() string {
	return fmt.Sprintf("CaptionFile(name=%s, format=%s, bytes=%d)", c.Name, c.Format, len(c.Data))
}
