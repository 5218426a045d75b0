package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickprogramme/ytfragments/internal/config"
	"github.com/patrickprogramme/ytfragments/internal/loader"
	"github.com/patrickprogramme/ytfragments/internal/ui"
	"github.com/patrickprogramme/ytfragments/internal/yt"
)

const (
	defaultUpdateTimeout = 15 * time.Second
	defaultLoadTimeout   = 5 * time.Minute
)

// CLIFlags contient les information venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	Reference  string // argument positionnel : [lang:]url-ou-id
	Lang       string
	Copy       bool
	Auto       bool
	YtDlpPath  string
}

// App orchestre les différentes dépendances (UI, YtDlp, Loader...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	ytClient yt.Interface // initialisé dans Run
	registry *loader.Registry
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags) *App {
	return &App{
		cfg:      cfg,
		ui:       uiClient,
		flags:    flags,
		registry: loader.NewRegistry(),
	}
}

// Run exécute le flux principal. Il initialise ytClient (via InitYtDlp) en
// utilisant le ctx, ainsi l'initialisation respecte annulation/signaux.
func (a *App) Run(ctx context.Context) error {
	// Récupération de la référence : priorité flag > clipboard > prompt
	argument := a.flags.Reference
	if argument == "" {
		if a.cfg.AutoMode {
			return fmt.Errorf("mode auto : une référence vidéo est requise en argument")
		}
		arg, err := a.ui.GetReference(ctx)
		if err != nil {
			return fmt.Errorf("get reference: %w", err)
		}
		argument = arg
	}

	// si l'utilisateur a passé --yt-dlp-path, l'appliquer et re-resoudre
	if a.flags.YtDlpPath != "" {
		a.cfg.YtDlp.Path = a.flags.YtDlpPath
		a.cfg.ResolveYtDlpPath()
	}

	// Init yt-dlp (CheckBinary + version)
	dl, version, err := yt.InitYtDlp(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("yt init: %w", err)
	}
	a.ytClient = dl

	// Update check (optionnel)
	if a.cfg.YtDlp.AutoUpdateCheck {
		if uerr := a.YtDlpUpdateCheck(ctx, defaultUpdateTimeout, version); uerr != nil {
			// non-fatal : on continue sans la vérification
			a.ui.PrintError(ctx, uerr.Error())
		}
	}

	// langue par défaut (flag > config) : ajoutée en préfixe seulement si
	// l'argument n'en porte pas déjà un — la grammaire reste dans internal/ref
	argument = applyLangPrefix(argument, a.flags.Lang, a.cfg.DefaultLang)

	// enregistrement du loader sous ses alias ("youtube", "yt")
	ytLoader := loader.New(a.ytClient)
	loader.RegisterFragmentLoaders(a.registry, ytLoader)

	loadFn, err := a.registry.Get("youtube")
	if err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	// Chargement du fragment
	loadCtx, loadCancel := context.WithTimeout(ctx, defaultLoadTimeout)
	defer loadCancel()

	fragment, err := loadFn(loadCtx, argument)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("opération annulée")
		}
		return fmt.Errorf("load fragment: %w", err)
	}

	// sortie principale : le texte du fragment sur stdout
	fmt.Println(fragment.Content)
	a.ui.PrintInfo(ctx, fmt.Sprintf("\nSource: %s", fragment.Source))

	// sauvegarde sur disque (optionnelle)
	if a.cfg.SaveFragment {
		path, serr := SaveFragment(fragment, argument, a.cfg.OutputDir)
		if serr != nil {
			return serr
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("Fragment écrit dans : %s", path))
	}

	// copie dans le presse-papier (optionnelle)
	if a.cfg.CopyToClipboard || a.flags.Copy {
		if cerr := CopyFragment(fragment); cerr != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: copie dans le presse-papier impossible: %v", cerr))
		} else {
			a.ui.PrintInfo(ctx, "Fragment copié dans le presse-papier.")
		}
	}

	if a.cfg.AutoMode {
		return nil
	}
	// Attendre terminaison (Ctrl+C) via UI
	return a.ui.WaitForExit(ctx)
}

// applyLangPrefix ajoute "lang:" devant l'argument si aucune langue n'y est
// déjà présente. flagLang prime sur la langue par défaut de la config.
func applyLangPrefix(argument, flagLang, cfgLang string) string {
	lang := flagLang
	if lang == "" {
		lang = cfgLang
	}
	if lang == "" {
		return argument
	}
	// déjà préfixé ? (même critère que la grammaire : colon hors URL)
	if strings.Contains(argument, ":") && !strings.HasPrefix(argument, "http") {
		return argument
	}
	return lang + ":" + argument
}
