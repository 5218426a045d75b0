package loader

import (
	"context"
	"fmt"
	"sort"

	"github.com/patrickprogramme/ytfragments/pkg/model"
)

// Func est la signature d'un loader de fragments exposé à l'hôte :
// un argument opaque en entrée, un fragment (texte + provenance) en sortie.
type Func func(ctx context.Context, argument string) (model.Fragment, error)

// Registry associe des noms de loaders à leur fonction. Rempli une fois à
// l'initialisation, lu ensuite ; aucune synchronisation nécessaire.
type Registry struct {
	loaders map[string]Func
}

func NewRegistry() *Registry {
	return &Registry{loaders: make(map[string]Func)}
}

// Register enregistre fn sous le nom donné. Écrase silencieusement une
// entrée existante (dernier enregistrement gagne, comme l'hôte d'origine).
func (r *Registry) Register(name string, fn Func) {
	r.loaders[name] = fn
}

// Get retourne le loader enregistré sous name.
func (r *Registry) Get(name string) (Func, error) {
	fn, ok := r.loaders[name]
	if !ok {
		return nil, fmt.Errorf("aucun loader enregistré sous le nom %q", name)
	}
	return fn, nil
}

// Names retourne les noms enregistrés, triés.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.loaders))
	for n := range r.loaders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// RegisterFragmentLoaders enregistre le loader YouTube sous ses deux
// alias, "youtube" et "yt".
func RegisterFragmentLoaders(r *Registry, l *Loader) {
	r.Register("youtube", l.Load)
	r.Register("yt", l.Load)
}
