// Package sim is the Monte Carlo engine estimating the distribution of
// transaction confirmation delay in a capacity-constrained, periodically
// cleared queue.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - pool.go: the pending-transaction queue, the free-list allocator, and
//     Poisson arrival generation
//   - block.go: greedy first-fit block clearing and age observation
//   - simulator.go: the per-run loop and the cross-run batch accumulation
//
// Supporting pieces:
//   - sampler.go: exponential interval draws for arrivals and discoveries
//   - rng.go: seed sourcing (OS entropy vs. deterministic streams)
//   - histogram.go: the log-scale age accumulator shared by all runs
//   - report.go: the final density / cumulative-density report
//
// Runs are strictly sequential: the Histogram is shared mutable state. A
// parallel caller must give each run its own Histogram and combine them
// with Merge once all runs finish.
package sim
