package inventory

import (
	"regexp"
	"strconv"
	"strings"
)

// lsinventory records have no terminator: a record runs from its
// "Patch <id> :" header to the next header or end of input. The quoted
// description line is followed by indented detail lines ending at the first
// blank line.
var (
	headerPattern      = regexp.MustCompile(`^Patch\s+(\d+)\s+:`)
	descriptionPattern = regexp.MustCompile(`Patch\s+description\s*:\s*"(.*)"`)
)

// invState tracks where the decoder is within the current record.
type invState int

const (
	seekingHeader invState = iota
	seekingDescription
	capturingExtra
)

// openRecord is a record whose closing header or EOF has not been seen yet.
type openRecord struct {
	id    int
	desc  string
	extra []string
}

// decodeInventory parses "opatch lsinventory" output with an explicit
// three-state machine. Lines before the first header are ignored.
func decodeInventory(lines []string) *Set {
	set := NewSet()
	state := seekingHeader
	var open *openRecord

	finalize := func() {
		if open == nil {
			return
		}
		set.Insert(Patch{
			ID:          open.id,
			Description: open.desc,
			ExtraLines:  strings.Join(open.extra, "\n"),
		})
		open = nil
	}

	for _, line := range lines {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			// A new header force-closes any open record.
			finalize()
			id, err := strconv.Atoi(m[1])
			if err != nil {
				// Digit run too long for an int; not a real patch ID.
				state = seekingHeader
				continue
			}
			open = &openRecord{id: id}
			state = seekingDescription
			continue
		}

		if m := descriptionPattern.FindStringSubmatch(line); m != nil && open != nil {
			open.desc = m[1]
			state = capturingExtra
			continue
		}

		if state == capturingExtra && open != nil {
			if strings.TrimSpace(line) != "" {
				// Keep the original indentation.
				open.extra = append(open.extra, line)
			} else {
				// Blank line ends capture; the record stays open until
				// the next header or EOF, and a later description line
				// re-enters capture.
				state = seekingDescription
			}
		}
	}

	finalize()
	return set
}
