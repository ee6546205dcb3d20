// Package restaurant holds the read-only restaurant projection consumed by
// order placement validation and by the geolocation-scored search. Writes go
// through the external CRUD collaborator, never through this core.
package restaurant
