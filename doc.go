// Package tracker implements the accounting engine behind dtk, a ledger for
// a small USD cash trader: buy/sell trades against a local currency, cash
// deposits and expenses, and the statistics derived from them.
//
// The engine is three pure functions over record snapshots: Replay (FIFO
// cost basis, realized profit and daily profit buckets), ProfitPerUnit
// (weighted-average per-sale annotations) and NetBalance (cash
// reconciliation). Everything is recomputed in full from the snapshot on
// every call; nothing derived is ever persisted.
//
// Book wires a ledger to a Store with optimistic writes; the store package
// provides the backends.
package tracker
