package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/patrickprogramme/ytfragments/internal/clipboard"
	"github.com/patrickprogramme/ytfragments/internal/yt"
)

type terminalUI struct {
	reader *bufio.Reader
}

func NewTerminal() Interface {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

// GetReference récupère la référence vidéo à charger.
// 1) presse-papier si son contenu ressemble à une URL YouTube
// 2) prompt interactif (URL ou identifiant, avec préfixe de langue optionnel)
// Un identifiant nu tapé au prompt est accepté tel quel : c'est la grammaire
// de internal/ref qui tranche ensuite.
func (t *terminalUI) GetReference(ctx context.Context) (string, error) {
	// 1) clipboard
	if clip, err := clipboard.ReadAll(); err == nil {
		clip = strings.TrimSpace(clip)
		if yt.IsYouTubeURL(clip) {
			t.PrintInfo(ctx, fmt.Sprintf("Utilisation de l'URL depuis le presse-papier: %s", clip))
			return clip, nil
		}
	}
	// 2) prompt
	for {
		fmt.Print("Entrez une URL Youtube ou un ID de vidéo ([lang:]url-ou-id): ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("lecture du prompt: %w", err)
		}
		arg := strings.TrimSpace(input)
		if arg != "" {
			return arg, nil
		}
		fmt.Println("❌ Entrée vide. Essayez à nouveau.")
	}
}

func (t *terminalUI) WaitForExit(ctx context.Context) error {
	fmt.Println("\n\nAppuyez sur Ctrl+C pour quitter.")

	// Prépare le canal pour les signaux d'interruption
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done(): // Context annulé ailleurs
		return ctx.Err()
	case <-sigCh: // Reçu Ctrl+C (SIGINT ou SIGTERM)
		return nil
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}
