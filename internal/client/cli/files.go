package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/velvetresearch/velvet/internal/client/staging"
)

func (a *App) stage(paths []string) {
	candidates := make([]staging.Candidate, 0, len(paths))
	for _, p := range paths {
		c, err := staging.FromFile(p)
		if err != nil {
			a.Notify(err.Error())
			continue
		}
		candidates = append(candidates, c)
	}

	accepted := a.ctrl.AddFiles(candidates)
	for _, f := range accepted {
		fmt.Fprintf(a.out, "Staged %s (%s)\n", f.Name, formatSize(f.Size))
	}
}

func (a *App) samples(ctx context.Context) {
	if err := a.ctrl.LoadSamples(ctx); err != nil {
		a.logger.Error(ctx, "loading samples failed", "error", err)
		return
	}
	a.list()
}

func (a *App) list() {
	files := a.ctrl.Files().Files()
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files staged")
		return
	}
	for i, f := range files {
		fmt.Fprintf(a.out, "%2d. %s (%s)\n", i+1, f.Name, formatSize(f.Size))
	}
}

func (a *App) remove(args []string) {
	n := 1
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			fmt.Fprintln(a.out, "Usage: remove [count]")
			return
		}
		n = parsed
	}
	a.ctrl.Files().RemoveFirst(n)
	a.list()
}

func (a *App) continueAnalysis(ctx context.Context) {
	if err := a.ctrl.Continue(ctx); err != nil {
		a.logger.Error(ctx, "continue failed", "error", err)
	}
}

// formatSize renders a byte count the way the staging list displays it:
// two-decimal MB for anything at least a megabyte, whole KB below that.
func formatSize(size int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	if size >= mb {
		return fmt.Sprintf("%.2f MB", float64(size)/float64(mb))
	}
	return fmt.Sprintf("%d KB", (size+kb-1)/kb)
}
