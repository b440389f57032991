// Package store persists ordered lists and items in SQLite.
//
// Every list and item carries an order key from package orderkey. Sibling
// order is simply ORDER BY order_key. Inserts and moves compute one new key
// from the neighbouring keys and update a single row; neighbours are never
// rewritten. Rebalance re-keys a whole list when keys have grown long.
//
// All mutating operations run in a single transaction so the neighbour
// lookup and the write see the same snapshot.
package store
