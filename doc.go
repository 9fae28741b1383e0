// Package fundfolio implements a pure portfolio accounting engine for a
// single investor's fund holdings.
//
// The engine is a function of a transaction ledger, a current price map and
// optional period filters. From those inputs it derives per-instrument
// positions and cost basis (weighted-average method), realized and unrealized
// profit/loss, a reconstructed equity curve, drawdown from peak, and
// periodized realized-PnL aggregates.
//
// The package keeps no state between calls: every derived structure is
// recomputed from the ledger and price map it is given. Persistence,
// authentication and rendering are the caller's concern.
package fundfolio
