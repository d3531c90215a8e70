package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/marauders/internal/model"
	"gopkg.in/yaml.v3"
)

// ReportStore persists and retrieves test run reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.RunReport) (m.Path, error)
	LoadReport(path m.Path) (m.RunReport, error)
	LoadReports(dir m.Path) ([]m.RunReport, error)
}

const reportExt = ".yaml"

// LocalReportStore keeps one YAML document per run inside a directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report into dir and returns the file path.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.RunReport) (m.Path, error) {
	if dir == "" {
		return "", errors.New("reports directory is empty")
	}

	if report.ID == "" {
		return "", errors.New("report has no id")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName(report))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return m.Path(path), nil
}

// LoadReport reads a single report file.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.RunReport, error) {
	// #nosec G304 - path points into the reports directory
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunReport{}, err
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("failed to parse report %s: %w", path, err)
	}

	return report, nil
}

// LoadReports reads every report in dir, oldest first. A missing directory
// holds no reports.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.RunReport, error) {
	entries, err := os.ReadDir(string(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var reports []m.RunReport

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		report, err := rs.LoadReport(m.Path(filepath.Join(string(dir), entry.Name())))
		if err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Started.Before(reports[j].Started)
	})

	return reports, nil
}

func reportFileName(report m.RunReport) string {
	id := report.ID
	if len(id) > 8 {
		id = id[:8]
	}

	return report.Started.UTC().Format("20060102T150405Z") + "-" + id + reportExt
}
