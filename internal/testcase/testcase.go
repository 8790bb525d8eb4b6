// Package testcase parses marker-delimited test-case blocks into fixed-schema
// records for tabular export.
//
// A block is free text in which sections are introduced by marker lines of
// the form "### <name>", where <name> is one of the French section names
// Titre, Préconditions, Données d'entrée, Étapes, Résultat attendu. The body
// of a section runs until the next marker line or the end of the block.
// Parsing is total: a block without any marker still yields a record.
package testcase

import (
	"fmt"
	"strings"
)

// Record is one structured test case. ID is synthesized from the block's
// position in the input sequence, never taken from content.
type Record struct {
	ID             string
	Title          string
	Preconditions  string
	InputData      string
	Steps          string
	ExpectedResult string
}

const markerPrefix = "###"

// sectionFields maps normalized marker names onto record field setters.
var sectionFields = map[string]func(*Record, string){
	"titre":            func(r *Record, v string) { r.Title = v },
	"préconditions":    func(r *Record, v string) { r.Preconditions = v },
	"données d'entrée": func(r *Record, v string) { r.InputData = v },
	"étapes":           func(r *Record, v string) { r.Steps = v },
	"résultat attendu": func(r *Record, v string) { r.ExpectedResult = v },
}

// ParseAll converts blocks into records, one record per block in input order.
// The n-th record's ID is always "TEST-n" (1-based); blocks that match no
// section produce a record with only the ID set.
func ParseAll(blocks []string) []Record {
	records := make([]Record, 0, len(blocks))
	for i, block := range blocks {
		r := parseBlock(block)
		r.ID = fmt.Sprintf("TEST-%d", i+1)
		records = append(records, r)
	}
	return records
}

// parseBlock scans marker lines left to right and assigns each section body
// to its field. Sections may appear in any order; a repeated section
// overwrites the earlier value (last wins). A marker line with an unknown
// name still terminates the preceding section; its own body is discarded.
func parseBlock(block string) Record {
	var r Record
	var current func(*Record, string)
	var body []string

	flush := func() {
		if current != nil {
			current(&r, strings.TrimSpace(strings.Join(body, "\n")))
		}
		current = nil
		body = body[:0]
	}

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, markerPrefix) {
			flush()
			current = sectionFields[normalizeName(strings.TrimPrefix(trimmed, markerPrefix))]
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()
	return r
}

// normalizeName lower-cases a marker name and collapses internal whitespace,
// so "###   TITRE " matches the vocabulary entry "titre".
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// SplitBlocks splits raw text into test-case blocks on separator lines
// consisting solely of "---". Chunks that are empty after trimming are
// dropped; everything else, marker-free or not, becomes a block.
func SplitBlocks(text string) []string {
	var blocks []string
	var current []string

	flush := func() {
		joined := strings.TrimSpace(strings.Join(current, "\n"))
		if joined != "" {
			blocks = append(blocks, joined)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}
