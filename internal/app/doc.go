// Package app is the composition root for the storefront TUI.
//
// # Overview
//
// Run wires configuration, logging, persisted state, the catalog source,
// the shared state.Store and the UI together, then blocks until the user
// quits or the context is cancelled.
//
// # Startup
//
//  1. Load ~/.config/storefront/config.toml (missing file means defaults)
//  2. Apply command-line overrides for the catalog location and state file
//  3. Open the slog log file; the terminal belongs to the UI
//  4. Open the TOML key-value file that holds the cart, favorites and theme
//  5. Build the catalog source (HTTP endpoint or local JSON file)
//  6. Create the store, which restores cart and favorites from storage
//  7. Start the UI; its first command kicks off the catalog load
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        Read config.toml
//	       ├─────> kv.Open()            Persisted cart/favorites/theme
//	       ├─────> catalog.NewSource()  HTTP or file catalog
//	       ├─────> state.New()          Shared store
//	       └─────> ui.Run()             TUI (blocks)
//
//	Catalog load (Init and ctrl+r):
//	┌─────────────────────────────────────────┐
//	│ StartLoader()                           │
//	│  ├─> store.BeginLoad()  (no-op if busy) │
//	│  ├─> src.FetchCatalog() goroutine       │
//	│  └─> store.FinishLoad()                 │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid config file
//   - Log file or state directory cannot be created
//   - Malformed catalog location
//
// Recoverable errors (logged and shown in the UI):
//   - Catalog fetch failures; the user retries with ctrl+r
//   - Failed writes of cart, favorites or theme
//
// An unreachable catalog does not stop startup. The UI opens with the
// persisted cart and favorites and reports the load failure.
package app
