// Package portfolio implements a lot-based accounting engine for a single
// user's holdings of equities and cryptocurrency, priced against a live
// quote source.
//
// The core functionalities include:
//   - Holding Registry: every open purchase lot, partitioned by asset class
//     and indexed by symbol and full instrument name, with the indexes kept
//     consistent with the live lot set at all times.
//   - Trading Operations: purchases open new lots at the live price;
//     disposals consume lots cheapest-first, splitting a partially consumed
//     lot, and record the realized sale with its cost basis.
//   - Sale Ledger: an append-only record of completed sales, queryable by
//     symbol and by inclusive time range.
//   - Reporting: holdings summaries with average cost and live gain/loss,
//     purchase and sale history over time ranges, and name-based lookup of
//     held symbols. Reports read a snapshot and never mutate state.
//   - Market Data: a Yahoo Finance quote client resolving batches of
//     symbols to live prices, tolerant of partially resolvable input.
//
// This package serves as the foundational logic for the `pfs` command-line
// tool; all state is in memory and lives for one session.
package portfolio
