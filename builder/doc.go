// Package builder assembles referral networks for tests, benchmarks, demos
// and the CLI's sample data.
//
// Building blocks:
//
//   - BuildNetwork(nopts, bopts, cons...) creates a core.Network, resolves the
//     builder configuration and runs each Constructor in order.
//   - Constructors: Chain(n), Star(n), RandomForest(n, p), DashboardSeed().
//   - ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     SymbolNumberIDFn(prefix), PaddedIDFn(prefix, width).
//   - Options: WithIDScheme, WithSeed, WithRand (option constructors panic on
//     nil input; constructors themselves only return errors).
//
// Referral rejections:
//
//	Constructors that follow a fixed topology (Chain, Star) treat any
//	rejected referral as fatal. Stochastic seeds (RandomForest, DashboardSeed)
//	may legitimately propose referrals the network rejects; those are skipped
//	and the run continues. Count them with a core.WithObserver passed in
//	nopts (metrics.Observer does exactly that).
//
// Determinism:
//
//	Same options, seed and constructor order produce the same network.
package builder
