package costs

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	FormatJSON = "json"
	FormatCSV  = "csv"

	defaultJSONPath = "cost-report.json"
	defaultCSVPath  = "cost-report.csv"
)

// Export writes the report to path in the requested format and returns
// the path written. An empty path picks a default name; an empty report
// still produces a valid file with headers.
func Export(report *CostReport, format, path string) (string, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		if path == "" {
			path = defaultJSONPath
		}
		return path, exportJSON(report, path)
	case FormatCSV:
		if path == "" {
			path = defaultCSVPath
		}
		return path, exportCSV(report, path)
	default:
		return "", errors.Errorf("unsupported export format: %s", format)
	}
}

func exportJSON(report *CostReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "write report")
}

func exportCSV(report *CostReport, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create report file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write([]string{"date", "amount"}); err != nil {
		return errors.Wrap(err, "write header")
	}
	if report == nil {
		w.Flush()
		return errors.Wrap(w.Error(), "flush report")
	}
	for _, day := range report.DailyCosts {
		row := []string{day.Date, strconv.FormatFloat(day.Amount, 'f', 2, 64)}
		if err = w.Write(row); err != nil {
			return errors.Wrap(err, "write row")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "flush report")
}
