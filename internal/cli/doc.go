// Package cli implements the kycmon command-line interface.
//
// # Command Structure
//
//	kycmon                 - Same as "kycmon dashboard"
//	kycmon dashboard       - Interactive monitoring dashboard
//	kycmon snapshot        - Print the current snapshot as text, JSON or YAML
//	kycmon version         - Build information
//	kycmon completion      - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command.
// Selection flags (--team, --range, --data) are shared by dashboard and
// snapshot through SelectionFlags. Flags override the config file, which
// overrides built-in defaults.
package cli
