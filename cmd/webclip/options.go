package main

import (
	"fmt"

	"github.com/fwojciec/webclip"
)

// Run executes the options list command.
func (c *OptionsListCmd) Run(deps *Dependencies) error {
	for _, key := range webclip.OptionKeys {
		value, err := deps.Options.Get(deps.Ctx, key)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s=%s\n", key, value)
	}
	return nil
}

// Run executes the options get command.
func (c *OptionsGetCmd) Run(deps *Dependencies) error {
	value, err := deps.Options.Get(deps.Ctx, c.Key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, value)
	return nil
}

// Run executes the options set command.
func (c *OptionsSetCmd) Run(deps *Dependencies) error {
	if err := deps.Options.Set(deps.Ctx, c.Key, c.Value); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Set %s\n", c.Key)
	return nil
}

// Run executes the options unset command.
func (c *OptionsUnsetCmd) Run(deps *Dependencies) error {
	if err := deps.Options.Unset(deps.Ctx, c.Key); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Unset %s\n", c.Key)
	return nil
}
