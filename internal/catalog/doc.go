// Package catalog defines the Product record and the sources that supply it.
//
// # Sources
//
// The storefront treats the catalog as an opaque, ordered list of products
// fetched once per session:
//
//   - HTTPSource: GET <base>/products.json, JSON array body
//   - FileSource: a local JSON file with the same shape
//
// NewSource picks one from a single location string:
//
//	"http://shop.local/static"  -> HTTPSource, GET /static/products.json
//	"127.0.0.1:8080"            -> HTTPSource, GET /products.json
//	"./products.json"           -> FileSource
//
// Unknown fields in the payload are ignored. Missing fields decode as zero
// values and are not validated.
//
// # Errors
//
// All failures are wrapped with context using fmt.Errorf:
//
//   - "execute request: dial tcp: connection refused"
//   - "catalog /products.json returned status 404"
//   - "decode catalog: unexpected end of JSON input"
//
// No retries happen here; the caller decides what a failed load means.
//
// # Development server
//
// NewHandler exposes a catalog file over HTTP for cmd/catalogd, routed with
// gorilla/mux.
package catalog
