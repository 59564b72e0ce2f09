package dialect

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ftpkit/listparse/internal/listing"
)

// unixEntryPattern matches one line of `ls -l` style server output:
// type, permissions, link count, owner, group, size, timestamp, name.
var unixEntryPattern = regexp.MustCompile(
	`^([\-bcdelfps])` +
		`([rwxsStTL\-]{9})\+?\s+` +
		`(\d+)\s+` +
		`(\S+)\s+` +
		`(\S+)\s+` +
		`(\d+)\s+` +
		`([A-Za-z]{3})\s+` +
		`(\d{1,2})\s+` +
		`(\d{4}|\d{1,2}:\d{2})\s+` +
		`(.+)$`)

type unixParser struct {
	now func() time.Time
}

// NewUnixParser returns a parser for Unix `ls -l` style listings.
func NewUnixParser() listing.EntryParser[*File] {
	return &unixParser{now: time.Now}
}

func (p *unixParser) ReadNextEntry(r *bufio.Reader) (string, error) {
	return readLine(r)
}

// Cleanup drops blank lines and the "total NNN" banner that precedes the
// entries on most servers.
func (p *unixParser) Cleanup(entries []string) []string {
	kept := entries[:0]
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" || trimmed == "total" || strings.HasPrefix(trimmed, "total ") {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

func (p *unixParser) Materialize(raw string) *File {
	groups := unixEntryPattern.FindStringSubmatch(raw)
	if groups == nil {
		return nil
	}

	file := &File{
		Permissions: groups[1] + groups[2],
		Owner:       groups[4],
		Group:       groups[5],
		Raw:         raw,
		ModTime:     p.parseTimestamp(groups[7], groups[8], groups[9]),
	}
	file.HardLinks, _ = strconv.Atoi(groups[3])
	file.Size, _ = strconv.ParseInt(groups[6], 10, 64)

	switch groups[1] {
	case "d":
		file.Type = TypeDirectory
	case "l":
		file.Type = TypeSymlink
	default:
		file.Type = TypeFile
	}

	file.Name = groups[10]
	if file.Type == TypeSymlink {
		if name, target, found := strings.Cut(file.Name, " -> "); found {
			file.Name = name
			file.LinkTarget = target
		}
	}
	return file
}

// parseTimestamp handles the two `ls -l` timestamp shapes: "Jan 2 2006" for
// older entries and "Jan 2 15:04" for recent ones. The short form carries no
// year; it is taken to be the most recent occurrence not in the future.
func (p *unixParser) parseTimestamp(month, day, yearOrTime string) time.Time {
	parsedMonth, err := time.Parse("Jan", month)
	if err != nil {
		return time.Time{}
	}
	dayNum, _ := strconv.Atoi(day)

	if hour, minute, found := strings.Cut(yearOrTime, ":"); found {
		h, _ := strconv.Atoi(hour)
		m, _ := strconv.Atoi(minute)
		now := p.now()
		t := time.Date(now.Year(), parsedMonth.Month(), dayNum, h, m, 0, 0, time.UTC)
		if t.After(now.AddDate(0, 0, 1)) {
			t = t.AddDate(-1, 0, 0)
		}
		return t
	}

	year, _ := strconv.Atoi(yearOrTime)
	return time.Date(year, parsedMonth.Month(), dayNum, 0, 0, 0, 0, time.UTC)
}
