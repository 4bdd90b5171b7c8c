package cli

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gmarciani/cliwizard/internal/config"
	"github.com/gmarciani/cliwizard/internal/generator"
	"github.com/gmarciani/cliwizard/internal/naming"
)

type bootstrapOptions struct {
	force      bool
	configFile string
	noInput    bool
}

func BootstrapCommand() *cobra.Command {
	opts := &bootstrapOptions{}

	cmd := &cobra.Command{
		Use:   "bootstrap PATH",
		Short: "Create a new CLI project skeleton interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.force, "force", "f", false, "Write into a non-empty directory without asking")
	flags.StringVarP(&opts.configFile, "configuration", "c", config.ConfigFileName, "Name of the configuration file to write")
	flags.BoolVar(&opts.noInput, "no-input", false, "Accept every default without prompting")

	return cmd
}

func runBootstrap(cmd *cobra.Command, path string, opts *bootstrapOptions) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving target directory: %w", err)
	}

	prompter := &Prompter{NonInteractive: opts.noInput}

	if !opts.force {
		if entries, err := os.ReadDir(target); err == nil && len(entries) > 0 {
			ok, err := prompter.Confirm(fmt.Sprintf("%s is not empty, continue?", target), false)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("target directory %s is not empty", target)
			}
		}
	}

	values := config.DefaultsMap()
	for name, def := range bootstrapDefaults(target) {
		values[name] = def
	}

	for _, name := range config.BootstrapFields {
		field, ok := config.FieldByName(name)
		if !ok {
			continue
		}
		answer, err := prompter.Text(field.Description, fmt.Sprint(values[name]))
		if err != nil {
			return err
		}
		values[name] = answer
	}

	expanded := config.ExpandRefs(values)
	cfg, err := config.FromMap(expanded)
	if err != nil {
		return err
	}

	gen, err := generator.New(cfg, "")
	if err != nil {
		return err
	}
	files, err := gen.Generate(nil)
	if err != nil {
		return err
	}

	configFile, err := gen.ConfigFile(expanded)
	if err != nil {
		return err
	}
	configFile.Path = opts.configFile
	files = append(files, configFile)

	if err := writeFiles(target, files); err != nil {
		return err
	}

	pterm.Success.Printfln("Bootstrapped %s in %s", cfg.ProjectName, target)
	cmd.PrintErrf("Edit %s, drop in your OpenAPI spec and run: cliwizard generate -w %s\n",
		opts.configFile, target)

	return nil
}

// bootstrapDefaults derives prompt defaults from the target directory name
// and the current OS user.
func bootstrapDefaults(target string) map[string]any {
	commandName := naming.KebabCase(filepath.Base(target))

	defaults := map[string]any{
		"CommandName": commandName,
		"ProjectName": naming.TitleCase(commandName),
		"PackageName": naming.SnakeCase(commandName),
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		defaults["GithubUser"] = u.Username
	}
	return defaults
}
