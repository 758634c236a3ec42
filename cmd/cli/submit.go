package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sevigo/accelerator-pr/internal/core"
	"github.com/sevigo/accelerator-pr/internal/gitutil"
	"github.com/sevigo/accelerator-pr/internal/partition"
	"github.com/sevigo/accelerator-pr/internal/project"
	"github.com/sevigo/accelerator-pr/internal/prompt"
	"github.com/sevigo/accelerator-pr/internal/repomanager"
)

// The submit job reports eight steps; the CLI adds two before it.
const submitSteps = 10

var (
	metadataOpts project.MetadataOptions
	dryRun       bool
)

func registerSubmitFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&metadataOpts.Override, "override-metadata", false, "Replace an existing metadata.json")
	f.StringVar(&metadataOpts.Title, "title", "", fmt.Sprintf("Project title (at most %d characters)", core.TitleMaxLength))
	f.StringVar(&metadataOpts.Description, "description", "", fmt.Sprintf("Project description (at most %d characters)", core.DescriptionMaxLength))
	f.StringVar(&metadataOpts.Algorithm, "algorithm", "", "Algorithm kind: Classification or Regression")
	f.StringVar(&metadataOpts.Sensor, "sensor", "", "Target sensor kind")
	f.BoolVar(&dryRun, "dry-run", false, "Compute the chunks to push without committing, pushing or opening a pull request")
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	overallStart := time.Now()

	a, p, cleanup, err := initApp()
	defer cleanup()
	if err != nil {
		return err
	}

	timer := newStepTimer(submitSteps, verbose)
	titleColor.Println("Accelerator pull request")
	dimColor.Printf("   Project: %s (%s)\n\n", p.Name, p.RootPath)

	timer.Step("Validating project structure")
	if err := a.Validator.Validate(p); err != nil {
		return fmt.Errorf("%w\n\nTip: Run 'accel-pr validate --path %s' after fixing the project root", err, p.RootPath)
	}
	timer.Done()

	timer.Step("Resolving metadata")
	var prompter project.Prompter
	if term.IsTerminal(int(os.Stdin.Fd())) {
		prompter = prompt.NewTerminal(os.Stdin, os.Stdout)
	}
	meta, source, err := a.Metadata.Resolve(p, metadataOpts, prompter)
	if err != nil {
		if errors.Is(err, project.ErrMetadataIncomplete) {
			return fmt.Errorf("%w\n\nTip: Pass --title, --description, --algorithm and --sensor when not running in a terminal", err)
		}
		return err
	}
	if source != core.MetadataFromFile && !dryRun {
		if err := a.Metadata.Save(p, meta); err != nil {
			return err
		}
	}
	timer.Done("Metadata " + source.String())

	sub := &core.Submission{Project: p, Metadata: meta, MetadataSource: source, DryRun: dryRun}
	res, err := a.Submit.WithProgress(timer).Run(ctx, sub)
	if err != nil {
		return withTip(err)
	}

	if verbose {
		dimColor.Printf("\nTotal time: %s\n", time.Since(overallStart).Round(time.Millisecond))
	}
	printSummary(res, dryRun)
	return nil
}

// withTip appends remediation text for errors a user can act on.
func withTip(err error) error {
	switch {
	case errors.Is(err, gitutil.ErrGitTooOld):
		return fmt.Errorf("%w\n\nTip: Install a current git from https://git-scm.com/downloads", err)
	case errors.Is(err, partition.ErrFileTooLarge):
		return fmt.Errorf("%w\n\nTip: Move large artifacts into an ignored directory or out of the project", err)
	case errors.Is(err, repomanager.ErrStoreInUse):
		return fmt.Errorf("%w\n\nTip: Run 'accel-pr clean --path %s' to remove it", err, projectPath)
	default:
		return err
	}
}
