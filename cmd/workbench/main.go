package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // Command completed
	ExitConstraint = 1 // Analysis ran but constraints were not satisfied
	ExitError      = 2 // Configuration or runtime error
)

// ConstraintError indicates that an analysis ran successfully but its
// constraints were not met, for example a recommendation with no qualifying
// model or a rollout simulation that rolled back.
type ConstraintError struct {
	Message string
}

func (e *ConstraintError) Error() string {
	return e.Message
}

func main() {
	// A .env in the working directory can set defaults; absence is fine.
	_ = godotenv.Load()

	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var constraintErr *ConstraintError
		if errors.As(err, &constraintErr) {
			os.Exit(ExitConstraint)
		}
		os.Exit(ExitError)
	}
}
