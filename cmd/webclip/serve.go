package main

import (
	"fmt"
	"net"

	webhttp "github.com/fwojciec/webclip/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot listen on %s: %s\n", c.Addr, err)
		return err
	}

	srv := webhttp.NewServer(deps.Capturer, deps.Options, deps.Logger)
	srv.AllowedOrigins = c.Origin

	fmt.Fprintf(deps.Stdout, "Listening on http://%s\n", ln.Addr())
	return srv.Serve(deps.Ctx, ln)
}
