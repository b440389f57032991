// Package harness runs ordering scenarios against a fresh in-memory store.
//
// A scenario is a list of steps (create lists, add, insert, move, delete,
// rebalance) followed by assertions on the final order. Scenarios are
// written in YAML or CUE:
//
//	name: move_card
//	description: Moving a card between columns keeps both columns ordered.
//	steps:
//	  - {op: create_list, list: todo}
//	  - {op: add, list: todo, titles: [a, b, c]}
//	  - {op: move, item: a, index: 2}
//	assertions:
//	  - {type: order, list: todo, order: [b, c, a]}
//
// Lists are referred to by name and items by title; both must be unique
// within a scenario. IDs are generated deterministically, so the trace of
// keys a scenario produces is stable and can be pinned with golden files.
package harness
