package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janisto/huma-greeter/internal/server"
)

func newOpenAPICmd() *cobra.Command {
	var (
		format  string
		version string
	)
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document",
		Long:  `Print the generated OpenAPI document to stdout without starting the server.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := renderOpenAPI(format, version)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	cmd.Flags().StringVar(&version, "openapi-version", "3.1", "OpenAPI version: 3.1 or 3.0")
	return cmd
}

func renderOpenAPI(format, version string) ([]byte, error) {
	doc := server.NewAPI(Version).OpenAPI()

	switch {
	case version == "3.1" && format == "json":
		return json.MarshalIndent(doc, "", "  ")
	case version == "3.1" && format == "yaml":
		return doc.YAML()
	case version == "3.0" && format == "json":
		return doc.Downgrade()
	case version == "3.0" && format == "yaml":
		return doc.DowngradeYAML()
	}
	if format != "json" && format != "yaml" {
		return nil, fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
	return nil, fmt.Errorf("unsupported OpenAPI version %q (want 3.1 or 3.0)", version)
}
