package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/patrickprogramme/ytfragments/internal/app"
	"github.com/patrickprogramme/ytfragments/internal/assets"
	"github.com/patrickprogramme/ytfragments/internal/bootstrap"
	"github.com/patrickprogramme/ytfragments/internal/config"
	"github.com/patrickprogramme/ytfragments/internal/ui"
)

func main() {
	flags := parseFlags()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
		fmt.Printf("Lancement depuis: %s\n", exePath)
	}

	// emplacement config par défaut
	if flags.ConfigPath == "ytfragments.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "ytfragments.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	// charger la config depuis flags.ConfigPath
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// appliquer le flag -auto par-dessus la config
	if flags.Auto {
		cfg.AutoMode = true
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags)
	if err := a.Run(ctx); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", "ytfragments.yaml", "path to config file")
	flag.StringVar(&f.Lang, "lang", "", "langue des sous-titres (équivaut au préfixe lang:)")
	flag.BoolVar(&f.Copy, "copy", false, "copier le fragment dans le presse-papier")
	flag.BoolVar(&f.Auto, "auto", false, "exécution automatique sans interaction")
	flag.StringVar(&f.YtDlpPath, "yt-dlp-path", "", "chemin absolu vers l'exécutable yt-dlp")
	flag.Parse()
	// argument positionnel : [lang:]url-ou-id
	f.Reference = flag.Arg(0)
	return f
}
