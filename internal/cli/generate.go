package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gmarciani/cliwizard/internal/config"
	"github.com/gmarciani/cliwizard/internal/generator"
	"github.com/gmarciani/cliwizard/internal/loader"
)

type generateOptions struct {
	workingDir   string
	openapi      string
	configFile   string
	outputDir    string
	name         string
	templatesDir string
}

func GenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the CLI project from the OpenAPI spec and configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.workingDir, "working-dir", "w", ".", "Directory holding the configuration file")
	flags.StringVarP(&opts.openapi, "openapi", "o", "", "OpenAPI spec path (overrides OpenapiSpec from the configuration)")
	flags.StringVarP(&opts.configFile, "config", "c", config.ConfigFileName, "Configuration file, relative to the working directory")
	flags.StringVarP(&opts.outputDir, "output", "d", "", "Output directory (defaults to the working directory)")
	flags.StringVarP(&opts.name, "name", "n", "", "Command name (overrides CommandName from the configuration)")
	flags.StringVar(&opts.templatesDir, "templates", "", "Directory with custom templates overriding the embedded set")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	workingDir, err := filepath.Abs(opts.workingDir)
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	configPath := resolvePath(workingDir, opts.configFile)
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if opts.name != "" {
		cfg.CommandName = opts.name
	}

	specPath := cfg.OpenapiSpec
	if opts.openapi != "" {
		specPath = opts.openapi
	}
	specPath = resolvePath(filepath.Dir(configPath), specPath)

	doc, err := loader.LoadFile(specPath)
	if err != nil {
		return err
	}
	cmd.PrintErrf("Loaded OpenAPI %s: %s\n", doc.Version(), specPath)

	groups := loader.NewParser(doc).Parse(loader.Options{
		ExcludeTags:    cfg.ExcludeTags,
		IncludeTags:    cfg.IncludeTags,
		TagMapping:     cfg.TagMapping,
		CommandMapping: cfg.CommandMapping,
	})
	if groups.Operations() == 0 {
		return fmt.Errorf("no operations matched the tag filters in %s", specPath)
	}

	gen, err := generator.New(cfg, opts.templatesDir)
	if err != nil {
		return err
	}
	files, err := gen.Generate(groups)
	if err != nil {
		return err
	}

	outputDir := workingDir
	if opts.outputDir != "" {
		outputDir = resolvePath(workingDir, opts.outputDir)
	}
	if err := writeFiles(outputDir, files); err != nil {
		return err
	}

	for _, group := range groups.Groups() {
		cmd.PrintErrf("  %s: %d commands\n", group.CLIName, len(group.Operations))
	}
	pterm.Success.Printfln("Generated %d files (%d command groups, %d commands) in %s",
		len(files), groups.Len(), groups.Operations(), outputDir)

	return nil
}

// resolvePath returns path joined onto base unless it is already absolute.
func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func writeFiles(dir string, files []generator.File) error {
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(path, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
