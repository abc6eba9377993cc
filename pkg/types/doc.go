// Package types defines the entities, errors, and interfaces shared between
// the grimoire storage backend and its callers: catalog items and their
// categories, immutable version snapshots, derived aggregates, and the
// Catalog and Settings contracts the CLI consumes.
package types
