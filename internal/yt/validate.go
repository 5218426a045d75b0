package yt

import "regexp"

// ytRegex reconnaît les URLs de visionnage (youtube.com/watch et youtu.be).
// Utilisé uniquement pour accepter un candidat venant du presse-papier ;
// la grammaire complète de l'argument vit dans internal/ref.
var ytRegex = regexp.MustCompile(`(?i)https?://(www\.)?(youtube\.com/watch\?v=|youtu\.be/)`)

func IsYouTubeURL(s string) bool {
	return ytRegex.MatchString(s)
}
