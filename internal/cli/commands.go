package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/ghodss/yaml"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/regression1607/meridian-frontend-sub000/internal/core"
)

func (a *app) templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the registered import templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCOLUMNS\tREQUIRED")
			for _, tpl := range core.All() {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", tpl.Name, len(tpl.Headers), strings.Join(tpl.Required, ", "))
			}
			return tw.Flush()
		},
	}
}

func (a *app) templateCmd() *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:     "template [name]",
		Short:   "Write the CSV import template for a name",
		Example: "csvtool template student --out ./templates",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, content, err := core.TemplateCSV(args[0])
			if err != nil {
				return newUserError("%s (available: %s)", err, strings.Join(core.Names(), ", "))
			}
			return a.writeFile(filepath.Join(dir, filename), []byte(content), force)
		},
	}

	cmd.Flags().StringVar(&dir, "out", ".", "directory to write the template to")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing file")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a CSV file and print headers, rows and errors as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.parseFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(result)
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	var (
		template string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:     "validate [file]",
		Short:   "Validate a CSV file against a template",
		Example: "csvtool validate students.csv --template student",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := a.parseFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			result := core.ValidateCSVFormat(parsed.Headers, parsed.Data, template)

			if asJSON {
				if err := a.printJSON(result); err != nil {
					return err
				}
			} else {
				for _, e := range parsed.Errors {
					fmt.Fprintln(a.out, "error:", e)
				}
				for _, e := range result.Errors {
					fmt.Fprintln(a.out, "error:", e)
				}
				for _, w := range result.Warnings {
					fmt.Fprintln(a.out, "warning:", w)
				}
			}

			if problems := len(parsed.Errors) + len(result.Errors); problems > 0 || !result.Valid {
				return newUserError("%s: validation failed with %d errors", args[0], problems)
			}
			if !asJSON {
				fmt.Fprintf(a.out, "%s: %d rows valid\n", args[0], len(parsed.Data))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "", "template name (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the validation result as JSON")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var (
		role   string
		out    string
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:     "convert [file]",
		Short:   "Convert an account CSV into user JSON or YAML",
		Example: "csvtool convert teachers.csv --role teacher --out teachers.json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !core.IsUserRole(role) {
				return newUserError("unknown role %q", role)
			}

			parsed, err := a.parseFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(parsed.Errors) > 0 {
				return newUserError("%s: %s", args[0], strings.Join(parsed.Errors, "; "))
			}

			users := core.TransformCSVToUserData(parsed.Data, role)
			data, err := encodeUsers(users, format)
			if err != nil {
				return err
			}
			if out == "" {
				_, err := a.out.Write(data)
				return err
			}
			return a.writeFile(out, data, force)
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "user role: student, teacher, parent or staff (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing file")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var (
		role  string
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:     "export [users.json|users.yaml]",
		Short:   "Export user JSON or YAML as an account CSV",
		Example: "csvtool export staff.json --role staff --out staff.csv",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !core.IsUserRole(role) {
				return newUserError("unknown role %q", role)
			}

			data, err := afero.ReadFile(a.fs, args[0])
			if err != nil {
				return err
			}
			// YAML is a superset of JSON, so one decoder reads both.
			var users []core.User
			if err := yaml.Unmarshal(data, &users); err != nil {
				return newUserError("%s: %v", args[0], err)
			}

			records, headers := core.TransformUserDataToCSV(users, role)
			content := core.GenerateCSV(records, headers)

			if out == "" {
				out = core.DownloadFileName(role + "_export")
			}
			return a.writeFile(out, []byte(content), force)
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "user role: student, teacher, parent or staff (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: <role>_export.csv)")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing file")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

// encodeUsers renders users as indented JSON or as YAML keyed by the same
// JSON field names.
func encodeUsers(users []core.User, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json", "":
		data, err := json.MarshalIndent(users, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		return yaml.Marshal(users)
	default:
		return nil, newUserError("unknown format %q, use json or yaml", format)
	}
}
