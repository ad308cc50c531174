package main

import (
	"context"

	"gat/internal/output"
	"gat/internal/repo"
)

func runCheck(ctx context.Context, path string) error {
	out := output.FromContext(ctx)

	r, err := repo.Open(path)
	if err != nil {
		return err
	}

	out.Successf("ok: %s (repositoryformatversion %d)", r.Worktree(), repo.SupportedFormatVersion)
	return nil
}
