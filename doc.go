// Package tally computes account balances for a personal finance tracker.
// It is designed to be local-first and deterministic: the same accounts and
// transactions always produce the same balances, regardless of the order in
// which records were imported.
//
// The core functionalities include:
//   - Replay Engine: a single deterministic pass over all transactions that
//     produces the current balance of every account, including accounts
//     discovered on the fly from transaction text.
//   - Balance Checkpoints: an account may assert its balance as of a date
//     (and optionally a specific transaction); replay only applies the
//     transactions that come after that point.
//   - Currency Inference: a best-guess of an account's type and currency
//     from its free-text name, used when synthesizing accounts.
//   - Valuation: conversion of every balance into the home currency and
//     aggregation into a net worth figure, with a built-in fallback rate
//     table when live rates are unavailable.
//   - Data Persistence: encoding and decoding of accounts and transactions
//     to and from human-readable JSONL files.
//
// This package serves as the foundational logic for the `tally` command-line
// tool; importers, stores and presentation layers are collaborators that
// produce or consume its records.
package tally
