package main

import "fmt"

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	body, ok := deps.Getter.Get(deps.Ctx, c.URL).Bytes()
	if !ok {
		return fmt.Errorf("no HTML content fetched from %s", c.URL)
	}

	_, err := deps.Stdout.Write(body)
	return err
}
