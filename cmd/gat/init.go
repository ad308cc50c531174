package main

import (
	"context"

	"gat/internal/config"
	"gat/internal/output"
	"gat/internal/repo"
)

func runInit(ctx context.Context, path, branch string) error {
	out := output.FromContext(ctx)

	if branch == "" && cfg != nil {
		branch = cfg.Init.DefaultBranch
	}
	if branch != "" {
		if err := config.ValidateBranchName(branch); err != nil {
			return err
		}
	}

	r, err := repo.Create(ctx, path, branch)
	if err != nil {
		return err
	}

	out.Successf("Initialized empty repository in %s", r.Gitdir())
	return nil
}
