// Package dialect provides concrete directory-listing dialect parsers and
// the registry that resolves a server-advertised dialect key to a parser.
package dialect

import (
	"fmt"
	"time"
)

// EntryType classifies a listed entry.
type EntryType int

const (
	TypeFile EntryType = iota
	TypeDirectory
	TypeSymlink
)

func (t EntryType) String() string {
	switch t {
	case TypeDirectory:
		return "dir"
	case TypeSymlink:
		return "symlink"
	default:
		return "file"
	}
}

// File is the structured record a dialect parser materializes from one raw
// listing entry. Fields a dialect cannot populate are left zero; Raw always
// holds the listing line the record came from.
type File struct {
	Name        string
	Size        int64
	Type        EntryType
	Permissions string
	Owner       string
	Group       string
	HardLinks   int
	ModTime     time.Time
	LinkTarget  string
	Raw         string
}

func (f *File) String() string {
	name := f.Name
	if f.Type == TypeSymlink && f.LinkTarget != "" {
		name = fmt.Sprintf("%s -> %s", f.Name, f.LinkTarget)
	}
	return fmt.Sprintf("%-7s %12d  %s  %s", f.Type, f.Size, f.ModTime.Format("2006-01-02 15:04"), name)
}
