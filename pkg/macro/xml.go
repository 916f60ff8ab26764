package macro

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"

	"github.com/yaklabco/textkit/pkg/fsutil"
)

// The persisted form is a small XML document:
//
//	<macro>
//	  <macroName>name</macroName>
//	  <action id="insert-break"></action>
//	  <action id="default-typed">text</action>
//	</macro>
//
// Ordering of action elements is the replay order. An empty command
// serializes as an empty element body.
type xmlMacro struct {
	XMLName xml.Name    `xml:"macro"`
	Name    string      `xml:"macroName"`
	Actions []xmlAction `xml:"action"`
}

type xmlAction struct {
	ID      string `xml:"id,attr"`
	Command string `xml:",chardata"`
}

// MarshalXMLBytes serializes the macro to its persisted form.
func (m *Macro) MarshalXMLBytes() ([]byte, error) {
	doc := xmlMacro{Name: m.Name}
	for _, rec := range m.Records {
		doc.Actions = append(doc.Actions, xmlAction{
			ID:      rec.ID,
			Command: stripControl(rec.Command),
		})
	}

	out, err := xml.MarshalIndent(doc, "", "   ")
	if err != nil {
		return nil, fmt.Errorf("encode macro: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// Parse decodes a persisted macro. A malformed document is an error and
// yields no macro at all; there is no partial result.
func Parse(data []byte) (*Macro, error) {
	var doc xmlMacro
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse macro: %w", err)
	}

	m := &Macro{Name: doc.Name}
	for _, a := range doc.Actions {
		m.Records = append(m.Records, Record{ID: a.ID, Command: a.Command})
	}
	return m, nil
}

// Save writes the macro to path atomically, so a crash mid-write never
// leaves a truncated macro file behind.
func (m *Macro) Save(ctx context.Context, path string) error {
	data, err := m.MarshalXMLBytes()
	if err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(ctx, path, data, 0); err != nil {
		return fmt.Errorf("save macro: %w", err)
	}
	return nil
}

// Load reads a macro file. On any error nothing is installed: the
// returned macro is nil.
func Load(path string) (*Macro, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load macro: %w", err)
	}
	return Parse(data)
}
