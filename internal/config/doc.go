// Package config loads the storefront configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/storefront/config.toml
//  3. If the file doesn't exist, use Default()
//  4. If the file exists but fields are missing or blank, use the defaults
//     for those fields
//
// Command-line values are layered on top with Config.Apply.
//
// # TOML Format
//
//	catalog = "http://127.0.0.1:8080"        # or "./products.json"
//	state_path = "~/.local/share/storefront/state.toml"
//	log_path = "~/.local/state/storefront/storefront.log"
//	log_level = "debug"
//	page_size = 12
//	currency = "₹"
//	request_timeout = "10s"                  # unset: no timeout
//
// Tilde expansion is applied to state_path and log_path.
//
// # Error Handling
//
// Load returns errors for unresolvable paths, unreadable files, TOML syntax
// errors and invalid log_level or request_timeout values. A missing file is
// not an error.
package config
