package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/intrack/internal/model"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all internships to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, yaml")
}

// exportRecord is the flattened, stable shape of an exported internship.
type exportRecord struct {
	Company       string       `json:"company" yaml:"company"`
	Location      string       `json:"location" yaml:"location"`
	Description   string       `json:"description" yaml:"description"`
	Role          string       `json:"role" yaml:"role"`
	ContactName   string       `json:"contact_name" yaml:"contact_name"`
	ContactEmail  string       `json:"contact_email" yaml:"contact_email"`
	ContactNumber string       `json:"contact_number" yaml:"contact_number"`
	Status        string       `json:"status" yaml:"status"`
	Remark        string       `json:"remark,omitempty" yaml:"remark,omitempty"`
	Tasks         []exportTask `json:"tasks" yaml:"tasks"`
}

type exportTask struct {
	Name     string `json:"name" yaml:"name"`
	Deadline string `json:"deadline,omitempty" yaml:"deadline,omitempty"`
}

func toRecords(list []model.Internship) []exportRecord {
	records := make([]exportRecord, 0, len(list))
	for _, in := range list {
		r := exportRecord{
			Company:       in.CompanyName,
			Location:      in.Location,
			Description:   in.Description,
			Role:          in.Role,
			ContactName:   in.ContactName,
			ContactEmail:  in.ContactEmail,
			ContactNumber: in.ContactNumber,
			Status:        string(in.ApplicationStatus),
			Remark:        in.Remark,
			Tasks:         []exportTask{},
		}
		for _, t := range in.Tasks {
			et := exportTask{Name: t.Name}
			if t.Deadline != nil {
				et.Deadline = t.Deadline.String()
			}
			r.Tasks = append(r.Tasks, et)
		}
		records = append(records, r)
	}
	return records
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := writeExport(os.Stdout, exportFormat, s.tracker.Internships()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}

func writeExport(w io.Writer, format string, list []model.Internship) error {
	records := toRecords(list)
	switch format {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("error encoding YAML: %w", err)
		}
		return enc.Close()
	case "csv":
		writeCSV(w, records)
	default:
		return fmt.Errorf("unknown export format %q (want csv, json or yaml)", format)
	}
	return nil
}

func writeCSV(w io.Writer, records []exportRecord) {
	fmt.Fprintln(w, "company,location,description,role,contact_name,contact_email,contact_number,status,remark,tasks")
	for _, r := range records {
		tasks := make([]string, 0, len(r.Tasks))
		for _, t := range r.Tasks {
			if t.Deadline != "" {
				tasks = append(tasks, t.Name+" ("+t.Deadline+")")
			} else {
				tasks = append(tasks, t.Name)
			}
		}
		fields := []string{
			r.Company, r.Location, r.Description, r.Role,
			r.ContactName, r.ContactEmail, r.ContactNumber,
			r.Status, r.Remark, strings.Join(tasks, "; "),
		}
		for i, f := range fields {
			fields[i] = csvEscape(f)
		}
		fmt.Fprintln(w, strings.Join(fields, ","))
	}
}

// csvEscape quotes a field containing a comma, quote or line break, doubling
// any quotes inside it.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
