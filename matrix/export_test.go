// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for the worker hook.
//
// WithCellHook_TestOnly returns an Option installing h as the per-cell hook
// run by every worker of that Mul call.
func WithCellHook_TestOnly(h func(row, col int)) Option {
	return func(o *Options) { o.cellHook = h }
}

// ResolveWorkers_TestOnly returns the worker count Mul would use for opts.
func ResolveWorkers_TestOnly(opts ...Option) int {
	return gatherOptions(opts...).resolveWorkers()
}
