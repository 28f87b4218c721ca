package suite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/flobnar/internal/core/domain"
)

type yamlDocument struct {
	Tests []yamlCase `yaml:"tests"`
}

type yamlCase struct {
	Name    string `yaml:"name"`
	Program string `yaml:"program"`
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Error   string `yaml:"error"`
}

// ParseYAML decodes a YAML test document. Unknown fields are rejected.
func ParseYAML(data []byte) ([]domain.TestCase, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc yamlDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("suite: parse yaml: %w", err)
	}

	var issues []string
	cases := make([]domain.TestCase, 0, len(doc.Tests))
	for i, tc := range doc.Tests {
		name := tc.Name
		if name == "" {
			name = fmt.Sprintf("case #%d", i+1)
		}
		if strings.TrimSpace(tc.Program) == "" {
			issues = append(issues, fmt.Sprintf("%s: program is empty", name))
			continue
		}
		if tc.Output == "" && tc.Error == "" {
			issues = append(issues, fmt.Sprintf("%s: needs output or error", name))
			continue
		}
		cases = append(cases, domain.TestCase{
			Name:    name,
			Program: strings.TrimSuffix(tc.Program, "\n"),
			Input:   tc.Input,
			Output:  strings.TrimSpace(tc.Output),
			Error:   tc.Error,
		})
	}
	if len(issues) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(issues, "; "))
	}
	return cases, nil
}
