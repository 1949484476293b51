package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Tiliavir/intrack/internal/model"
)

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"with space", "with space"},
		{"with,comma", `"with,comma"`},
		{`with"quote`, `"with""quote"`},
		{"with\nnewline", "\"with\nnewline\""},
		{"with\rreturn", "\"with\rreturn\""},
		{"", ""},
	}
	for _, tt := range tests {
		got := csvEscape(tt.input)
		if got != tt.want {
			t.Errorf("csvEscape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func exportFixture() []model.Internship {
	d := model.NewDeadline(2024, 4, 20)
	return []model.Internship{{
		CompanyName:       "Google",
		Location:          "Singapore",
		Description:       "Backend, payments",
		Role:              "SWE Intern",
		ContactName:       "Jane",
		ContactEmail:      "jane@google.com",
		ContactNumber:     "98765432",
		ApplicationStatus: model.StatusPending,
		Tasks:             model.TaskList{{Name: "OA", Deadline: &d}, {Name: "Interview"}},
	}}
}

func TestWriteExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := writeExport(&buf, "csv", exportFixture()); err != nil {
		t.Fatalf("writeExport: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	want := `Google,Singapore,"Backend, payments",SWE Intern,Jane,jane@google.com,98765432,pending,,OA (20/04/2024); Interview`
	if lines[1] != want {
		t.Errorf("row = %q\nwant  %q", lines[1], want)
	}
}

func TestWriteExportJSONAndYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeExport(&buf, "json", exportFixture()); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"deadline": "20/04/2024"`) {
		t.Errorf("json output missing deadline:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), `"remark"`) {
		t.Errorf("json output should omit empty remark:\n%s", buf.String())
	}

	buf.Reset()
	if err := writeExport(&buf, "yaml", exportFixture()); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	for _, want := range []string{"- company: Google", "deadline: 20/04/2024", "- name: Interview"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("yaml output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestWriteExportUnknownFormat(t *testing.T) {
	if err := writeExport(&bytes.Buffer{}, "xml", nil); err == nil {
		t.Error("expected error for unknown format")
	}
}
