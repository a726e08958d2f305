package packagejson

import (
	"path/filepath"
	"strings"
	"testing"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestValidateFile_Valid(t *testing.T) {
	result, err := ValidateFile(testPath("valid.json"))
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("unexpected issue: %s", issue)
		}
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file    string
		path    string
		keyword string
	}{
		{"invalid-missing-dependencies.json", "", "required"},
		{"invalid-name.json", "/name", "pattern"},
		{"invalid-dependency.json", "/dependencies", "propertyNames"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile() error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}

			found := false
			for _, issue := range result.Issues {
				if strings.HasPrefix(issue.Path, tt.path) && issue.Message != "" {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue under %q in %+v", tt.path, result.Issues)
			}
		})
	}
}

func TestValidate_NotJSON(t *testing.T) {
	if _, err := Validate([]byte("name: p1")); err == nil {
		t.Error("expected error for non-JSON input")
	}
}

func TestValidateFile_Missing(t *testing.T) {
	if _, err := ValidateFile(testPath("does-not-exist.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidationIssueString(t *testing.T) {
	issue := ValidationIssue{Path: "/name", Message: "does not match pattern"}
	if got := issue.String(); got != "/name: does not match pattern" {
		t.Errorf("String() = %q", got)
	}
	if got := (ValidationIssue{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q", got)
	}
}
