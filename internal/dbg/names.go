package dbg

import (
	petname "github.com/dustinkirkland/golang-petname"
)

func init() {
	// Names only need to be distinguishable within a run, and repeating them
	// across runs would make old output directories collide.
	petname.NonDeterministicMode()
}

// SessionName returns a readable name such as "brave-otter", used to name
// output that has no name of its own.
func SessionName() string {
	return petname.Generate(2, "-")
}
