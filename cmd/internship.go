package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/intrack/internal/command"
	"github.com/Tiliavir/intrack/internal/model"
	"github.com/Tiliavir/intrack/internal/parser"
)

// prefixFlag is a long flag that stands in for a prefixed argument.
type prefixFlag struct {
	name   string
	prefix command.Prefix
	usage  string
}

type prefixFlags []prefixFlag

func (fs prefixFlags) register(c *cobra.Command) {
	for _, f := range fs {
		c.Flags().String(f.name, "", f.usage)
	}
}

// put copies every flag the user set into args, so that flags and inline
// prefixes go through the same validation.
func (fs prefixFlags) put(c *cobra.Command, args *parser.ArgumentMultimap) {
	for _, f := range fs {
		if fl := c.Flags().Lookup(f.name); fl != nil && fl.Changed {
			args.Put(f.prefix, fl.Value.String())
		}
	}
}

var fieldFlagNames = map[model.Field]string{
	model.FieldCompanyName:       "company",
	model.FieldLocation:          "location",
	model.FieldDescription:       "description",
	model.FieldRole:              "role",
	model.FieldContactName:       "contact-name",
	model.FieldContactEmail:      "contact-email",
	model.FieldContactNumber:     "contact-number",
	model.FieldApplicationStatus: "status",
	model.FieldRemark:            "remark",
}

func fieldFlags() prefixFlags {
	fs := make(prefixFlags, 0, len(model.Fields))
	for _, f := range model.Fields {
		fs = append(fs, prefixFlag{
			name:   fieldFlagNames[f],
			prefix: command.FieldPrefixes[f],
			usage:  f.String() + " (same as " + command.FieldPrefixes[f].String() + ")",
		})
	}
	return fs
}

// parsedCommand builds a sub-command that tokenizes its arguments like the
// shell does, merges flags in and runs the result once.
func parsedCommand(word, use, short, usage string, flags prefixFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  usage,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		mm := parser.TokenizeFor(word, strings.Join(args, " "))
		flags.put(cmd, mm)
		runCommand(word, mm)
		return nil
	}
	flags.register(c)
	return c
}

var addCmd = parsedCommand(command.AddWord,
	"add /com COMPANY /loc LOCATION /desc DESCRIPTION /role ROLE /cname NAME /cemail EMAIL /cnum NUMBER /status STATUS [/remark REMARK]",
	"Add an internship", command.AddUsage, fieldFlags())

var editCmd = parsedCommand(command.EditWord,
	"edit INDEX [/com COMPANY] [/loc LOCATION] ...",
	"Edit fields of a displayed internship", command.EditUsage, fieldFlags())

var deleteCmd = parsedCommand(command.DeleteWord,
	"delete INDEX",
	"Delete a displayed internship", command.DeleteUsage, nil)
