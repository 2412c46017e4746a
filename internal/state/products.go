package state

import (
	"strings"

	"github.com/five82/storefront/internal/catalog"
)

// LoadStatus tracks the catalog loader.
type LoadStatus int

const (
	LoadIdle LoadStatus = iota
	LoadLoading
	LoadLoaded
	LoadErrored
)

func (s LoadStatus) String() string {
	switch s {
	case LoadLoading:
		return "loading"
	case LoadLoaded:
		return "loaded"
	case LoadErrored:
		return "errored"
	default:
		return "idle"
	}
}

const defaultLoadError = "Failed to fetch products"

// Products is the loaded catalog plus load status.
type Products struct {
	Items   []catalog.Product
	Loading bool
	Error   string
	Status  LoadStatus
}

// beginLoad enters the loading state. ok is false when a load is already in
// flight, in which case p is returned unchanged.
func beginLoad(p Products) (next Products, ok bool) {
	if p.Loading {
		return p, false
	}
	p.Loading = true
	p.Error = ""
	p.Status = LoadLoading
	return p, true
}

// finishLoad applies a load result. On failure the previous items are kept.
func finishLoad(p Products, items []catalog.Product, err error) Products {
	p.Loading = false
	if err != nil {
		msg := strings.TrimSpace(err.Error())
		if msg == "" {
			msg = defaultLoadError
		}
		p.Error = msg
		p.Status = LoadErrored
		return p
	}
	p.Items = catalog.CloneProducts(items)
	p.Error = ""
	p.Status = LoadLoaded
	return p
}

func cloneProducts(p Products) Products {
	p.Items = catalog.CloneProducts(p.Items)
	return p
}
