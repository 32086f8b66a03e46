// Package orders serves the demo order listing behind the session guard and
// seeds demo data for it.
//
// The listing is not scoped to the caller: every signed in account sees all
// orders. Each order still records the account that seeded it.
package orders
