// Package order contains the Order aggregate: immutable line items with
// placement-time captured prices, the computed decimal total, and the
// customer-visible status state machine. The aggregate keeps the logistics
// side (courier assignments) at arm's length: it only mirrors the courier
// link and lets the dispatch flow own assignment state.
package order
