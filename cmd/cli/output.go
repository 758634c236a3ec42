package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/sevigo/accelerator-pr/internal/core"
	"github.com/sevigo/accelerator-pr/internal/jobs"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

// stepTimer prints step progress. Details and timings only show in verbose mode.
type stepTimer struct {
	stepNum    int
	totalSteps int
	start      time.Time
	verbose    bool
}

var _ jobs.Progress = (*stepTimer)(nil)

func newStepTimer(totalSteps int, verbose bool) *stepTimer {
	return &stepTimer{totalSteps: totalSteps, verbose: verbose}
}

func (t *stepTimer) Step(name string) {
	t.stepNum++
	t.start = time.Now()
	if t.verbose {
		titleColor.Printf("\nStep %d/%d: %s...\n", t.stepNum, t.totalSteps, name)
	} else {
		fmt.Printf("%s...\n", name)
	}
}

func (t *stepTimer) Done(details ...string) {
	if !t.verbose {
		return
	}
	elapsed := time.Since(t.start).Round(time.Millisecond)
	successColor.Printf("   ✓ Done (%s)\n", elapsed)
	for _, d := range details {
		if d != "" {
			dimColor.Printf("   └── %s\n", d)
		}
	}
}

// Info is shown in every mode; the job only uses it for things the user
// should know about.
func (t *stepTimer) Info(format string, args ...any) {
	warnColor.Printf("   ├── "+format+"\n", args...)
}

// summaryMarkdown renders the outcome of a run as markdown.
func summaryMarkdown(res *core.SubmitResult, dryRun bool) string {
	var b strings.Builder
	if dryRun {
		fmt.Fprintf(&b, "# Dry run for %s\n\n", res.Branch)
	} else {
		fmt.Fprintf(&b, "# Submitted %s\n\n", res.Branch)
	}
	fmt.Fprintf(&b, "- **Branch:** `%s`\n", res.Branch)
	fmt.Fprintf(&b, "- **Changed files:** %d\n", res.Changed)
	fmt.Fprintf(&b, "- **Deleted files:** %d\n", res.Deleted)
	if res.ForkRecreate {
		b.WriteString("- **Fork:** recreated from upstream\n")
	}
	if res.ForkMissing {
		b.WriteString("- **Fork:** does not exist yet; a real run creates it\n")
	}
	if res.Review.URL != "" {
		fmt.Fprintf(&b, "- **Pull request:** #%d %s\n", res.Review.Number, res.Review.URL)
	}

	if len(res.Groups) > 0 {
		b.WriteString("\n| Chunk | Files | Size |\n|---:|---:|---:|\n")
		for i, g := range res.Groups {
			fmt.Fprintf(&b, "| %d | %d | %s |\n", i+1, len(g.Files), humanBytes(g.TotalBytes))
		}
	}

	if res.StashPatch != "" {
		fmt.Fprintf(&b, "\n> Some local edits could not be reapplied after updating the branch. "+
			"They were saved to `%s`; apply them with `git apply`.\n", res.StashPatch)
	}
	return b.String()
}

func printSummary(res *core.SubmitResult, dryRun bool) {
	md := summaryMarkdown(res, dryRun)
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println()
	fmt.Print(md)
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
