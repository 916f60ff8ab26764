// Package macro records sequences of editing actions and replays them.
// A macro is an ordered list of (action id, command) records; the
// recorder is explicit state handed to whoever needs it, not a process
// global.
package macro

// Record is one recorded action: the action identifier and its command
// payload (typed text, a quote character, ...). Command is empty for
// actions without a payload.
type Record struct {
	ID      string
	Command string
}

// Macro is a named, ordered action sequence.
type Macro struct {
	Name    string
	Records []Record
}

// Recorder accumulates actions between Begin and End. The zero value
// is ready to use and not recording.
type Recorder struct {
	current   *Macro
	recording bool
}

// NewRecorder returns an idle recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Begin starts recording a macro with the given name, discarding any
// recording in progress.
func (r *Recorder) Begin(name string) {
	r.current = &Macro{Name: name}
	r.recording = true
}

// Recording reports whether a recording is in progress.
func (r *Recorder) Recording() bool {
	return r.recording
}

// RecordAction appends an action to the macro being recorded, command
// verbatim. Outside a recording it does nothing, so editors can call it
// unconditionally.
func (r *Recorder) RecordAction(id, command string) {
	if !r.recording {
		return
	}
	r.current.Records = append(r.current.Records, Record{
		ID:      id,
		Command: command,
	})
}

// End stops recording and returns the finished macro, or nil when no
// recording was in progress.
func (r *Recorder) End() *Macro {
	if !r.recording {
		return nil
	}
	m := r.current
	r.current = nil
	r.recording = false
	return m
}

// Discard abandons the recording in progress.
func (r *Recorder) Discard() {
	r.current = nil
	r.recording = false
}

// Play replays a macro through dispatch, stopping at the first error.
func Play(m *Macro, dispatch func(Record) error) error {
	for _, rec := range m.Records {
		if err := dispatch(rec); err != nil {
			return err
		}
	}
	return nil
}

// stripControl removes control characters below 0x20 from a command.
// Serialization applies it; in-memory macros keep commands verbatim.
func stripControl(s string) string {
	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 0x20 {
			clean = append(clean, r)
		}
	}
	return string(clean)
}
