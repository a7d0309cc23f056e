package divide

// Option configures optional behavior of BinarySearch.
type Option func(*SearchOptions)

// SearchOptions holds the search configuration.
type SearchOptions struct {
	// SortCheck verifies the searched range is ascending before searching,
	// turning a silent wrong answer into core.ErrPrecondition. It costs
	// O(n), so it is off by default.
	SortCheck bool
}

// DefaultOptions returns SearchOptions with the sortedness check disabled.
func DefaultOptions() SearchOptions {
	return SearchOptions{SortCheck: false}
}

// WithSortCheck returns an Option that enables the sortedness check.
func WithSortCheck() Option {
	return func(o *SearchOptions) {
		o.SortCheck = true
	}
}
