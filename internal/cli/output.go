package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
	"github.com/jmgilman/localfs/internal/watch"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// statRecord is the serialized form of core.FileStats.
type statRecord struct {
	Path    string     `json:"path" yaml:"path"`
	Type    string     `json:"type" yaml:"type"`
	Size    *int64     `json:"size,omitempty" yaml:"size,omitempty"`
	ModTime *time.Time `json:"mtime,omitempty" yaml:"mtime,omitempty"`
}

func toRecord(st core.FileStats) statRecord {
	r := statRecord{Path: st.Path(), Type: st.Type().String()}
	if st.HasSize() {
		size := st.Size()
		r.Size = &size
	}
	if st.HasModTime() {
		mtime := st.ModTime().UTC()
		r.ModTime = &mtime
	}
	return r
}

type eventRecord struct {
	Op   string `json:"op" yaml:"op"`
	Path string `json:"path" yaml:"path"`
}

type printer struct {
	w      io.Writer
	format string
}

func (p printer) stats(list []core.FileStats) error {
	records := make([]statRecord, 0, len(list))
	for _, st := range list {
		records = append(records, toRecord(st))
	}

	switch p.format {
	case formatJSON:
		return p.json(records)
	case formatYAML:
		return p.yaml(records)
	}

	for _, r := range records {
		size, mtime := "-", "-"
		if r.Size != nil {
			size = fmt.Sprintf("%d", *r.Size)
		}
		if r.ModTime != nil {
			mtime = r.ModTime.Format(time.RFC3339)
		}
		if _, err := fmt.Fprintf(p.w, "%-12s %12s  %-25s %s\n", r.Type, size, mtime, r.Path); err != nil {
			return err
		}
	}
	return nil
}

func (p printer) events(batch []watch.Event) error {
	records := make([]eventRecord, 0, len(batch))
	for _, e := range batch {
		records = append(records, eventRecord{Op: e.Op.String(), Path: e.Path})
	}

	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	case formatYAML:
		return p.yaml(records)
	}

	for _, r := range records {
		if _, err := fmt.Fprintf(p.w, "%-8s %s\n", r.Op, r.Path); err != nil {
			return err
		}
	}
	return nil
}

func (p printer) json(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p printer) yaml(v interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// reportError writes err to w in the given format. Unknown formats fall back
// to text.
func reportError(w io.Writer, format string, err error) error {
	p := printer{w: w, format: format}
	switch format {
	case formatJSON:
		return p.json(errors.ToJSON(err))
	case formatYAML:
		return p.yaml(errors.ToJSON(err))
	}
	_, werr := fmt.Fprintf(w, "Error: %v\n", err)
	return werr
}
