// Package thrifthunter provides the bookkeeping core for a single-user
// thrift-resale dashboard. It is designed to be local-first and auditable:
// the whole session state lives in one JSON file that the user owns.
//
// The core functionalities include:
//   - Session State: a single AppState record (sale history, inventory,
//     watchlist, goals, preferences) loaded from disk at startup and fully
//     rewritten after every mutating action.
//   - Ledger Reporting: profit aggregation over weekly, monthly, yearly and
//     lifetime windows, always recomputed relative to the reporting date.
//   - Profit Calculators: net profit on a marketplace sale and on an
//     incoming buyer offer, each with its own fixed fee rate.
//   - License Gating: verification of a Pro license key against admin
//     override codes or the remote licensing service; the resulting is_pro
//     flag is the sole gate for Pro-only features.
//   - Remote Catalog: a TTL-cached fetch of the brand blacklist and the
//     regional deal vault that degrades to empty data on any failure.
//
// This package serves as the foundational logic for the `tth` command-line
// tool and the dashboard HTTP API, ensuring that all operations are
// consistent and based on a single source of truth.
package thrifthunter
