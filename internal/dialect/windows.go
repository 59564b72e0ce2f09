package dialect

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ftpkit/listparse/internal/listing"
)

// dosEntryPattern matches one line of DOS `dir` style server output, e.g.
// "12-03-96  06:38AM       <DIR>          games" or
// "05-22-97  08:08AM               828 AUTOEXEC.BAK".
var dosEntryPattern = regexp.MustCompile(
	`^(\d{2})-(\d{2})-(\d{2,4})\s+` +
		`(\d{1,2}):(\d{2})\s*([AP]M)\s+` +
		`(?:(<DIR>)|(\d+))\s+` +
		`(\S.*)$`)

type windowsParser struct{}

// NewWindowsParser returns a parser for Windows/DOS `dir` style listings.
func NewWindowsParser() listing.EntryParser[*File] {
	return &windowsParser{}
}

func (p *windowsParser) ReadNextEntry(r *bufio.Reader) (string, error) {
	return readLine(r)
}

func (p *windowsParser) Cleanup(entries []string) []string {
	kept := entries[:0]
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

func (p *windowsParser) Materialize(raw string) *File {
	groups := dosEntryPattern.FindStringSubmatch(raw)
	if groups == nil {
		return nil
	}

	file := &File{
		Name:    groups[9],
		Raw:     raw,
		ModTime: parseDOSTimestamp(groups[1], groups[2], groups[3], groups[4], groups[5], groups[6]),
	}
	if groups[7] == "<DIR>" {
		file.Type = TypeDirectory
	} else {
		file.Type = TypeFile
		file.Size, _ = strconv.ParseInt(groups[8], 10, 64)
	}
	return file
}

func parseDOSTimestamp(month, day, year, hour, minute, meridiem string) time.Time {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	y, _ := strconv.Atoi(year)
	h, _ := strconv.Atoi(hour)
	min, _ := strconv.Atoi(minute)

	// Two-digit years pivot at 70, as DOS listings predate four-digit output
	if y < 70 {
		y += 2000
	} else if y < 100 {
		y += 1900
	}

	if meridiem == "PM" && h != 12 {
		h += 12
	} else if meridiem == "AM" && h == 12 {
		h = 0
	}

	return time.Date(y, time.Month(m), d, h, min, 0, 0, time.UTC)
}
