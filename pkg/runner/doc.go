/*
Package runner implements the line-mode loop of the Tally calculator.

Each input line is sanitized, split into keys and applied to the session; the
resulting display is written back after every line. The runner is used when
stdin is not a terminal (pipes, scripts, CI) and by `tally run --line`.

# Usage

	r := runner.NewRunner(
		runner.WithInput(os.Stdin),
		runner.WithOutput(os.Stdout),
		runner.WithStore(store),
		runner.WithSessionID("desk"),
	)

	if err := r.Run(ctx, tally.New()); err != nil {
		log.Fatal(err)
	}
*/
package runner
