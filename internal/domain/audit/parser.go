package audit

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/triagecore/triage/internal/domain/triage"
)

// minFields is the column count a row must reach to be usable:
// identifier, age, gender, symptoms, blood pressure, heart rate,
// temperature, conditions, risk label.
const minFields = 9

// ParseDataset reads a newline-delimited dataset whose first line is a
// header. The separator is a tab when the header contains one, otherwise
// a comma. Rows with fewer than minFields fields or an unrecognizable
// risk label are dropped silently; one bad row never aborts the parse.
func ParseDataset(r io.Reader) ([]TrainingRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, scanner.Err()
	}
	header := scanner.Text()
	sep := byte(',')
	if strings.ContainsRune(header, '\t') {
		sep = '\t'
	}

	var records []TrainingRecord
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFields(line, sep)
		if len(fields) < minFields {
			continue
		}
		actual, ok := triage.ParseRiskLevel(fields[8])
		if !ok {
			continue
		}
		records = append(records, TrainingRecord{
			PatientID:     strings.TrimSpace(fields[0]),
			Age:           atoiOrZero(fields[1]),
			Gender:        strings.TrimSpace(fields[2]),
			Symptoms:      strings.TrimSpace(fields[3]),
			BloodPressure: strings.TrimSpace(fields[4]),
			HeartRate:     atoiOrZero(fields[5]),
			Temperature:   atofOrZero(fields[6]),
			Conditions:    strings.TrimSpace(fields[7]),
			ActualRisk:    actual,
		})
	}
	return records, scanner.Err()
}

// splitFields splits a line on sep, honoring double quotes: while inside
// quotes the separator is literal text. Quote characters themselves are
// not part of the field value.
func splitFields(line string, sep byte) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			inQuotes = !inQuotes
		case c == sep && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, field.String())
	return fields
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func atofOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
