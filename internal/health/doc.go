// Package health holds the KYC monitoring data model and the collaborator
// that supplies it.
//
// A Snapshot bundles every dataset the dashboard renders: the pass-rate
// series, the alerts-triggered series, sub-check health rows, key
// transaction rows and alert-rule rows. Snapshots come from a Provider:
//
//	StaticProvider - the built-in sample dataset, identical for every query
//	FileProvider   - a YAML dataset file with the same shape
//
// Providers accept a team and date range so a live backend can scope its
// answer. Neither built-in provider filters on them.
package health
