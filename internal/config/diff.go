package config

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"
)

// MarshalYAML renders cfg as YAML using its json field names.
func MarshalYAML(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Diff renders a human-readable diff between two configurations.
// It returns an empty string when they are equal.
func Diff(from, to *Config, useColor bool) (string, error) {
	fromYAML, err := MarshalYAML(from)
	if err != nil {
		return "", fmt.Errorf("serializing base config: %w", err)
	}
	toYAML, err := MarshalYAML(to)
	if err != nil {
		return "", fmt.Errorf("serializing effective config: %w", err)
	}

	fromInput, err := parseYAMLInput("defaults", fromYAML)
	if err != nil {
		return "", fmt.Errorf("parsing base YAML: %w", err)
	}
	toInput, err := parseYAMLInput("effective", toYAML)
	if err != nil {
		return "", fmt.Errorf("parsing effective YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
