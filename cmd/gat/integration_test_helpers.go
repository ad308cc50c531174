//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"gat/internal/log"
	"gat/internal/output"
)

// testContext returns a context with a discarding logger and printer.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, false))
	return output.WithPrinter(ctx, output.New(io.Discard, false))
}

// testContextWithOutput returns a context whose printer writes into the
// returned buffer, for asserting on primary output.
func testContextWithOutput(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, false))
	return output.WithPrinter(ctx, output.New(buf, false)), buf
}

// executeCommand runs cmd with args and returns cobra's combined output.
func executeCommand(ctx context.Context, cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}
