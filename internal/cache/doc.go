// Package cache persists aggregation results in SQLite, keyed by
// referendum title. The aggregation engine itself is pure and cheap to
// re-run, so caching is strictly an opt-in collaborator concern: the
// CLI uses it to skip re-parsing large datasets for repeat queries,
// and Invalidate implements the explicit refresh signal.
package cache
