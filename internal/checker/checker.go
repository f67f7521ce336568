// Package checker validates duration values stored one per line in files.
package checker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jparise/humantime/internal/report"
	"github.com/jparise/humantime/internal/timeparse"
	"golang.org/x/sync/semaphore"
)

// Summary counts what a check covered.
type Summary struct {
	Files    int
	Values   int
	Problems int
}

// Checker orchestrates checking files.
type Checker struct {
	output *report.Output
}

// New creates a new Checker that reports through output.
func New(output *report.Output) *Checker {
	return &Checker{output: output}
}

// Check expands the patterns in opts and checks every matched file.
// It returns an error when any problem was found or no file could be read.
func (c *Checker) Check(ctx context.Context, opts *Options) (Summary, error) {
	paths, err := c.expand(opts.Patterns)
	if err != nil {
		return Summary{}, err
	}

	if len(paths) == 0 {
		c.output.Warningf("No files match the patterns")
		return Summary{}, nil
	}

	// Check files concurrently with bounded parallelism
	var wg sync.WaitGroup
	var errorCount, valueCount, problemCount atomic.Int32
	sem := semaphore.NewWeighted(int64(max(opts.Jobs, 1)))

	for _, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return Summary{}, err
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.Release(1)

			values, problems, err := c.checkFile(path, opts)
			if err != nil {
				errorCount.Add(1)
				c.output.Warningf("%s: %v", path, err)
				return
			}
			valueCount.Add(int32(values))
			problemCount.Add(int32(len(problems)))
			c.output.Problems(problems)
		}(path)
	}

	wg.Wait()

	summary := Summary{
		Files:    len(paths) - int(errorCount.Load()),
		Values:   int(valueCount.Load()),
		Problems: int(problemCount.Load()),
	}

	if int(errorCount.Load()) == len(paths) {
		return summary, fmt.Errorf("failed to read all %d files", len(paths))
	}
	if summary.Problems > 0 {
		return summary, fmt.Errorf("found %d problems in %d values", summary.Problems, summary.Values)
	}

	return summary, nil
}

// expand resolves patterns to file paths. Duplicates are removed while
// preserving input order.
func (c *Checker) expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			c.output.Warningf("%s: no matching files", pattern)
			continue
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}

	return paths, nil
}

func (c *Checker) checkFile(path string, opts *Options) (int, []report.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	return checkLines(path, f, opts)
}

// checkLines parses every line of r. Blank lines and lines starting with
// '#' are skipped.
func checkLines(name string, r io.Reader, opts *Options) (int, []report.Problem, error) {
	var (
		values   int
		problems []report.Problem
	)

	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		values++

		// Point at the error if it has a position, otherwise at the value.
		col := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
		value, err := timeparse.ParseDuration(line)
		if err != nil {
			var perr *timeparse.ParseError
			if errors.As(err, &perr) {
				if start, _, ok := perr.Span(); ok {
					col = start
				}
			}
		} else {
			err = checkRange(value, opts)
		}

		if err != nil {
			problems = append(problems, report.Problem{
				Location: fmt.Sprintf("%s:%d:%d", name, lineNum, utf8.RuneCountInString(line[:col])+1),
				Input:    line,
				Err:      err,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return values, problems, err
	}
	return values, problems, nil
}

func checkRange(value timeparse.Elapsed, opts *Options) error {
	if opts.Min != nil && value.Compare(*opts.Min) < 0 {
		return fmt.Errorf("%v is less than the minimum of %v", value, *opts.Min)
	}
	if opts.Max != nil && value.Compare(*opts.Max) > 0 {
		return fmt.Errorf("%v is greater than the maximum of %v", value, *opts.Max)
	}
	return nil
}
