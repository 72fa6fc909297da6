// Package parser reads learning item definitions from plain text files.
//
// Each item is a block of prefixed lines:
//
//	T: Surah Al-Ikhlas
//	K: surahs
//	S: afternoon
//	N: Recite three times.
//	Then review the meaning.
//	---
//
// T is the title, K the category, S the time slot and N free-form notes that
// may span several lines. A new T line or a "---" separator ends the block.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conorfennell/learntrack/internal/domain"
)

const (
	titlePrefix    = "T:"
	categoryPrefix = "K:"
	slotPrefix     = "S:"
	notesPrefix    = "N:"
	separator      = "---"
)

var (
	// ErrUnknownCategory is returned for a K: value that names no category.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownTimeSlot is returned for an S: value that names no time slot.
	ErrUnknownTimeSlot = errors.New("unknown time slot")
	// ErrMissingField is returned for a block without a title, category or slot.
	ErrMissingField = errors.New("missing field")
)

type state int

const (
	seeking state = iota
	readingItem
	readingNotes
)

// ParseFile reads a file from the given path and extracts all items.
func ParseFile(path string) ([]domain.LearningItem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads from an io.Reader and extracts all items. Items are returned
// without IDs. Invalid blocks are skipped and reported together in the
// returned error; valid items are still returned alongside it.
func Parse(r io.Reader) ([]domain.LearningItem, error) {
	scanner := bufio.NewScanner(r)
	var items []domain.LearningItem
	var errs []error

	var current domain.LearningItem
	var notes []string
	var blockStart int
	var blockErr error
	currentState := seeking

	finishItem := func() {
		if len(notes) > 0 {
			current.Notes = strings.TrimSpace(strings.Join(notes, "\n"))
			notes = nil
		}

		switch {
		case current.Title == "":
			// Nothing to keep.
		case blockErr != nil:
			errs = append(errs, blockErr)
		case current.Category == "":
			errs = append(errs, fmt.Errorf("line %d: %w: category for %q", blockStart, ErrMissingField, current.Title))
		case current.TimeSlot == "":
			errs = append(errs, fmt.Errorf("line %d: %w: time slot for %q", blockStart, ErrMissingField, current.Title))
		default:
			items = append(items, current)
		}

		current = domain.LearningItem{}
		blockErr = nil
		currentState = seeking
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == separator {
			finishItem()
			continue
		}

		prefix, value, ok := splitPrefix(line)
		if !ok {
			if currentState == readingNotes {
				notes = append(notes, line)
			}
			continue
		}

		switch prefix {
		case titlePrefix:
			if current.Title != "" { // A second title always starts a new item
				finishItem()
			}
			if currentState == seeking {
				blockStart = lineNo
			}
			current.Title = value
			currentState = readingItem
		case categoryPrefix:
			if currentState == seeking {
				blockStart = lineNo
			}
			c, valid := domain.ParseCategory(value)
			if !valid && blockErr == nil {
				blockErr = fmt.Errorf("line %d: %w: %q", lineNo, ErrUnknownCategory, value)
			}
			current.Category = c
			currentState = readingItem
		case slotPrefix:
			if currentState == seeking {
				blockStart = lineNo
			}
			s, valid := domain.ParseTimeSlot(value)
			if !valid && blockErr == nil {
				blockErr = fmt.Errorf("line %d: %w: %q", lineNo, ErrUnknownTimeSlot, value)
			}
			current.TimeSlot = s
			currentState = readingItem
		case notesPrefix:
			if currentState == seeking {
				blockStart = lineNo
			}
			notes = append(notes, value)
			currentState = readingNotes
		}
	}

	finishItem() // Finish the very last item in the file

	if err := scanner.Err(); err != nil {
		return items, err
	}

	return items, errors.Join(errs...)
}

// splitPrefix recognises a known prefix at the start of line and returns the
// trimmed value after it.
func splitPrefix(line string) (string, string, bool) {
	for _, p := range []string{titlePrefix, categoryPrefix, slotPrefix, notesPrefix} {
		if strings.HasPrefix(line, p) {
			return p, strings.TrimSpace(line[len(p):]), true
		}
	}
	return "", "", false
}
