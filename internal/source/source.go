// Package source reads delimited weather files and writes the bundled
// sample dataset. File handles are scoped to each call and closed on every
// exit path.
package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FileSource reads inputs from the local filesystem.
type FileSource struct{}

// Lines reads the file at path and returns its lines in file order.
// The trailing newline, if any, does not produce an empty final line.
func (FileSource) Lines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return lines, nil
}

// sampleLines is a fixed one-year dataset spanning January through December,
// used for demos and end-to-end tests.
var sampleLines = []string{
	"date,temperature,humidity,precipitation,windSpeed",
	"2023-01-01,5.5,80.0,2.1,12.3",
	"2023-01-02,4.8,85.0,0.0,8.7",
	"2023-01-03,3.2,90.0,5.6,15.2",
	"2023-02-01,6.7,75.0,0.0,10.5",
	"2023-02-02,8.1,65.0,0.0,9.3",
	"2023-03-01,12.3,60.0,1.2,8.7",
	"2023-03-15,15.6,55.0,0.0,12.8",
	"2023-04-01,18.2,50.0,0.5,14.3",
	"2023-05-01,22.7,45.0,0.0,11.2",
	"2023-06-01,26.5,40.0,0.0,9.8",
	"2023-07-01,32.3,35.0,0.0,7.5",
	"2023-07-15,31.8,38.0,0.0,8.2",
	"2023-08-01,30.5,42.0,1.8,10.3",
	"2023-09-01,25.3,55.0,2.5,12.8",
	"2023-10-01,19.8,65.0,3.2,14.5",
	"2023-11-01,12.5,75.0,4.7,16.3",
	"2023-12-01,7.2,85.0,3.1,18.7",
}

// SampleLines returns a copy of the sample dataset, header included.
func SampleLines() []string {
	out := make([]string, len(sampleLines))
	copy(out, sampleLines)
	return out
}

// WriteSample writes the sample dataset to path, overwriting any existing
// file.
func WriteSample(path string) error {
	data := strings.Join(sampleLines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write sample: %w", err)
	}
	return nil
}
