package ui

import "context"

type Interface interface {
	// GetReference doit renvoyer une référence vidéo exploitable.
	// Implémentation terminale : priorité clipboard -> prompt
	GetReference(ctx context.Context) (string, error)

	// WaitForExit bloque jusqu'à ce qu'un signal d'annulation soit reçu via ctx (Ctrl+C).
	WaitForExit(ctx context.Context) error

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
