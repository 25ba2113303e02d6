package construction

// Threading an error out of every step would make the step loop noisy for a
// condition that can only occur on a degenerate triangle. Instead, steps throw
// with a panic, and Compute recovers to convert to an error.

type thrown struct {
	err error
}

func throw(err error) {
	panic(thrown{err})
}

// Converts a recovered thrown value back into its error. Anything else is a
// real panic, and is re-raised.
func handlePanicRecover(r interface{}) error {
	if r != nil {
		if t, ok := r.(thrown); ok {
			return t.err
		}
		panic(r)
	}
	return nil
}
