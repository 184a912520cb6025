package main

import (
	"github.com/jongio/urlkit/cliout"
	"github.com/jongio/urlkit/logutil"
	"github.com/jongio/urlkit/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const metadataSchemaVersion = "1.0"

// CLIMetadata describes the urlkit command tree for tooling such as shell
// integrations and documentation generators.
type CLIMetadata struct {
	SchemaVersion string            `json:"schemaVersion"`
	Name          string            `json:"name"`
	Version       string            `json:"version"`
	Commands      []CommandMetadata `json:"commands"`
	Environment   []EnvVarMetadata  `json:"environment,omitempty"`
}

// CommandMetadata describes a single command.
type CommandMetadata struct {
	Name        []string          `json:"name"`
	Short       string            `json:"short"`
	Long        string            `json:"long,omitempty"`
	Usage       string            `json:"usage,omitempty"`
	Example     string            `json:"example,omitempty"`
	Flags       []FlagMetadata    `json:"flags,omitempty"`
	Subcommands []CommandMetadata `json:"subcommands,omitempty"`
}

// FlagMetadata describes a flag of a command.
type FlagMetadata struct {
	Name        string `json:"name"`
	Shorthand   string `json:"shorthand,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
	Persistent  bool   `json:"persistent,omitempty"`
}

// EnvVarMetadata describes an environment variable read by urlkit.
type EnvVarMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
}

var environment = []EnvVarMetadata{
	{Name: envOutput, Description: "Default for --output", Example: "json"},
	{Name: logutil.EnvDebug, Description: "Default for --debug", Example: "true"},
	{Name: logutil.EnvLogFormat, Description: "Default for --structured-logs", Example: "json"},
	{Name: "NO_COLOR", Description: "Disable colored output", Example: "1"},
}

// generateMetadata introspects the command tree below root.
func generateMetadata(root *cobra.Command) *CLIMetadata {
	return &CLIMetadata{
		SchemaVersion: metadataSchemaVersion,
		Name:          root.Name(),
		Version:       version.Version,
		Commands:      generateCommands(root),
		Environment:   environment,
	}
}

// newMetadataCommand creates a hidden command that prints the command tree
// as JSON, whatever the output format.
func newMetadataCommand(rootProvider func() *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "metadata",
		Short:  "Print command metadata as JSON",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliout.PrintJSON(generateMetadata(rootProvider()))
		},
	}
}

func generateCommands(cmd *cobra.Command) []CommandMetadata {
	var commands []CommandMetadata
	for _, child := range cmd.Commands() {
		if child.Hidden || child.Name() == "help" || child.Name() == "completion" {
			continue
		}
		commands = append(commands, generateCommand(child))
	}
	return commands
}

func generateCommand(cmd *cobra.Command) CommandMetadata {
	meta := CommandMetadata{
		Name:    commandPath(cmd),
		Short:   cmd.Short,
		Long:    cmd.Long,
		Usage:   cmd.UseLine(),
		Example: cmd.Example,
	}

	// cobra adds the help flag lazily, only to commands that run.
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Name != "help" {
			meta.Flags = append(meta.Flags, flagMetadata(f, false))
		}
	})
	cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) {
		if f.Name != "help" {
			meta.Flags = append(meta.Flags, flagMetadata(f, true))
		}
	})

	meta.Subcommands = generateCommands(cmd)
	return meta
}

func flagMetadata(f *pflag.Flag, persistent bool) FlagMetadata {
	return FlagMetadata{
		Name:        f.Name,
		Shorthand:   f.Shorthand,
		Description: f.Usage,
		Type:        f.Value.Type(),
		Default:     f.DefValue,
		Persistent:  persistent,
	}
}

// commandPath returns the command names below the root, e.g. ["build"].
func commandPath(cmd *cobra.Command) []string {
	if !cmd.HasParent() || !cmd.Parent().HasParent() {
		return []string{cmd.Name()}
	}
	return append(commandPath(cmd.Parent()), cmd.Name())
}
