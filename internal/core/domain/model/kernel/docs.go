// Package kernel contains shared value objects used across all domain
// aggregates: UUID identities, geographic points with great-circle distance,
// and exact decimal money. All types follow the constructor pattern with
// validation; zero values are invalid and detectable via Validate.
package kernel
