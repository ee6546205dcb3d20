// Package services contains stateless domain services coordinating multiple
// aggregates or projections: proximity-based courier dispatch and the
// multi-criteria restaurant search pipeline. Services hold no state and
// perform no I/O; the application layer feeds them loaded projections.
package services
