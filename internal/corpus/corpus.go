// Package corpus holds the static reference data of the advocacy
// collection: format specifications, political framings, the citation
// table, and the document texts themselves. Everything here is constant;
// consumers receive it through the registry and citation store.
package corpus

import (
	"github.com/ssxfund/tribune/internal/citation"
	"github.com/ssxfund/tribune/internal/registry"
)

// Load assembles the read-only registry and citation store from the
// static definitions in this package
func Load() (*registry.Registry, *citation.Store) {
	return registry.New(Formats(), Framings(), Documents()), citation.NewStore(Citations())
}
