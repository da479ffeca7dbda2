package internal

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/goplus/llar-getopt/recipe"
)

type optionInfo struct {
	Values  []string `yaml:"values" json:"values"`
	Default string   `yaml:"default" json:"default"`
}

type inspectOutput struct {
	Name           string                `yaml:"name" json:"name"`
	Version        string                `yaml:"version" json:"version"`
	License        string                `yaml:"license" json:"license"`
	Author         string                `yaml:"author" json:"author"`
	URL            string                `yaml:"url" json:"url"`
	Description    string                `yaml:"description" json:"description"`
	Settings       []string              `yaml:"settings" json:"settings"`
	OS             string                `yaml:"os" json:"os"`
	Options        map[string]optionInfo `yaml:"options" json:"options"`
	ExportsSources []string              `yaml:"exports_sources" json:"exports_sources"`
	Requires       []string              `yaml:"requires,omitempty" json:"requires,omitempty"`
}

func (c *CLI) newInspectCmd() *cobra.Command {
	var targetOS, format string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the recipe metadata and the options configured for an OS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := c.loadRecipe()
			if err != nil {
				return err
			}
			out := inspect(r, targetOS)

			var data []byte
			switch format {
			case "yaml":
				data, err = yaml.Marshal(out)
			case "json":
				data, err = json.MarshalIndent(out, "", "  ")
				data = append(data, '\n')
			default:
				return zerr.With(zerr.New("unknown output format"), "format", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&targetOS, "os", recipe.HostOS(), "Target OS the options are configured for")
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	return cmd
}

func inspect(r *recipe.Recipe, targetOS string) inspectOutput {
	out := inspectOutput{
		Name:           r.Name,
		Version:        r.Version,
		License:        r.License,
		Author:         r.Author,
		URL:            r.URL,
		Description:    r.Description,
		Settings:       r.Settings,
		OS:             targetOS,
		Options:        map[string]optionInfo{},
		ExportsSources: r.ExportsSources,
	}
	for name, opt := range r.ConfigureOptions(targetOS) {
		out.Options[name] = optionInfo{Values: opt.Values, Default: opt.Default}
	}
	for _, req := range r.Requires {
		out.Requires = append(out.Requires, req.String())
	}
	return out
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
