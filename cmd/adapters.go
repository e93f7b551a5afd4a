package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eykd/mdvet-go/internal/checker"
	"github.com/eykd/mdvet-go/internal/config"
	"github.com/eykd/mdvet-go/internal/fs"
	"github.com/eykd/mdvet-go/internal/linkprobe"
	"github.com/eykd/mdvet-go/internal/lock"
	"github.com/eykd/mdvet-go/internal/validator"
)

// lockFilename is the advisory lock file guarding in-place fixes.
const lockFilename = ".mdvet.lock"

// loadConfig resolves the effective config. An explicit path must load;
// otherwise the nearest .mdvet.yml above the working directory applies, and
// absence means every rule is enabled.
func loadConfig(configPath string) (config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("getting working directory: %w", err)
	}
	found, err := fs.FindUpImpl(cwd, config.Filename)
	if err != nil {
		return config.Config{}, err
	}
	if found == "" {
		return config.Default(), nil
	}
	return config.Load(found)
}

// newValidator builds a validator from the effective config.
func newValidator(configPath string) (*validator.Validator, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return validator.New(cfg.Options()...), nil
}

// --- checkAdapter ---

// checkAdapter builds a CheckService per run from the effective config and
// flags.
type checkAdapter struct {
	reader checker.ContentReader
}

func (a *checkAdapter) service(opts CheckOptions) (*checker.CheckService, error) {
	v, err := newValidator(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	var prober checker.Prober
	if opts.ProbeLinks {
		prober = &linkprobe.Prober{
			Stat:    &fs.OSStatter{},
			Client:  &http.Client{},
			Timeout: opts.Timeout,
		}
	}
	return checker.NewCheckService(a.reader, v, prober), nil
}

func (a *checkAdapter) CheckPaths(ctx context.Context, paths []string, opts CheckOptions) ([]checker.DocumentReport, error) {
	svc, err := a.service(opts)
	if err != nil {
		return nil, err
	}

	reports := make([]checker.DocumentReport, 0, len(paths))
	for _, path := range paths {
		report, err := svc.CheckFile(ctx, path)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

func (a *checkAdapter) CheckContent(ctx context.Context, name string, raw []byte, opts CheckOptions) (*checker.DocumentReport, error) {
	svc, err := a.service(opts)
	if err != nil {
		return nil, err
	}
	return svc.CheckContent(ctx, name, raw)
}

// --- fixAdapter ---

// fixAdapter wires the FixService to the OS filesystem with an advisory lock
// in the working directory.
type fixAdapter struct{}

func (a *fixAdapter) Fix(ctx context.Context, paths []string, apply bool) (*checker.FixResult, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	svc := checker.NewFixService(
		&fs.OSContentReader{},
		&fs.OSWriter{},
		lock.NewFromPath(filepath.Join(cwd, lockFilename)),
	)
	return svc.Fix(ctx, paths, apply)
}

// --- rulesAdapter ---

// rulesAdapter lists the built-in rules under the effective config, followed
// by the probe rules that run with --probe-links.
type rulesAdapter struct{}

func (a *rulesAdapter) Rules(ctx context.Context, configPath string) ([]validator.RuleInfo, error) {
	v, err := newValidator(configPath)
	if err != nil {
		return nil, err
	}

	out := v.Rules()
	for _, info := range linkprobe.Infos() {
		out = append(out, validator.RuleInfo{
			ID:          info.ID,
			Severity:    info.Severity,
			Fixable:     info.Fixable,
			Enabled:     true,
			Description: info.Description,
		})
	}
	return out, nil
}

// BuildCommandTree assembles the root command with every subcommand wired to
// the given runners. Nil runners get the OS-backed defaults.
func BuildCommandTree(check CheckRunner, fix FixRunner, rules RuleLister) *cobra.Command {
	if check == nil {
		check = &checkAdapter{reader: &fs.OSContentReader{}}
	}
	if fix == nil {
		fix = &fixAdapter{}
	}
	if rules == nil {
		rules = &rulesAdapter{}
	}

	root := NewRootCmd()
	root.AddCommand(NewCheckCmd(check))
	root.AddCommand(NewFixCmd(fix))
	root.AddCommand(NewRulesCmd(rules))
	root.AddCommand(NewInitCmd(os.Getwd))
	root.AddCommand(NewServeCmd())
	return root
}
