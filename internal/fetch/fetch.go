// Package fetch fournit des utilitaires légers et testables pour télécharger
// des ressources HTTP avec des limites explicites (timeout, taille max).
package fetch

import (
	"errors"
	"time"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultMaxBytes  = 10_000_000
	DefaultUserAgent = "ytfragments/1.0"
)

// Erreurs exportées
var ErrTooLarge = errors.New("response body too large")
