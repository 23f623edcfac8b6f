package annotations

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

var ErrAttributeNotFound = errors.New("attribute not found")

// Read parses a tab-delimited annotation table whose first row names the
// columns (the first column holds taxon names) and returns the distinct
// non-empty values of attribute in the order they first appear.
func Read(r io.Reader, attribute string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	column := -1
	values := make([]string, 0)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if column < 0 {
			column = lo.IndexOf(lo.Map(fields, func(field string, _ int) string {
				return strings.TrimSpace(field)
			}), strings.TrimSpace(attribute))
			if column <= 0 {
				return nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, attribute)
			}
			continue
		}

		if column < len(fields) {
			values = append(values, strings.TrimSpace(fields[column]))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read annotations: %w", err)
	}
	if column < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, attribute)
	}

	return lo.Uniq(lo.Compact(values)), nil
}

// Attributes lists the attribute columns of the header row.
func Attributes(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return []string{}, nil
		}
		return lo.Compact(lo.Map(fields[1:], func(field string, _ int) string {
			return strings.TrimSpace(field)
		})), nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read annotation header: %w", err)
	}

	return []string{}, nil
}

func ReadFile(path string, attribute string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open annotations: %w", err)
	}
	defer file.Close()

	return Read(file, attribute)
}
