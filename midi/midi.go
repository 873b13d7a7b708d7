package midi

import (
	"bytes"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"

	"annoscape/constants"
	"annoscape/model"
)

// ReadMidiFile parses a standard MIDI file from disk.
func ReadMidiFile(path string) (s *smf.SMF, e error) {
	// the parser panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s = nil
			e = fmt.Errorf("parsing midi file: %v", r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

type onNote struct {
	start float64
	vel   uint8
}

// FromSMF turns the note on/off pairs of a MIDI sequence into a sound_event
// annotation: each note becomes one event labeled note_<key>, with velocity
// mapped onto confidence and the given role applied across the board. The
// annotation duration is the latest note end. Notes still sounding when
// their track ends are closed at the track's final event.
func FromSMF(s *smf.SMF, role string) *model.Annotation {
	ann := &model.Annotation{Namespace: constants.NamespaceSoundEvent}

	for _, events := range s.Tracks {
		pressed := make(map[uint8]onNote)
		var absTicks int64
		var t float64
		for _, event := range events {
			absTicks += int64(event.Delta)
			t = float64(s.TimeAt(absTicks)) / 1e6
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				if on, ok := pressed[key]; ok {
					// retrigger without a note off closes the first note
					ann.Append(noteEvent(key, on, t, role))
				}
				pressed[key] = onNote{start: t, vel: velocity}
			case event.Message.GetNoteEnd(&channel, &key):
				if on, ok := pressed[key]; ok {
					ann.Append(noteEvent(key, on, t, role))
					delete(pressed, key)
				}
			}
		}
		for key, on := range pressed {
			ann.Append(noteEvent(key, on, t, role))
		}
	}

	for _, ev := range ann.Events {
		if ev.End > ann.Duration {
			ann.Duration = ev.End
		}
	}
	return ann
}

func noteEvent(key uint8, on onNote, end float64, role string) model.Event {
	return model.Event{
		Start: on.start,
		End:   end,
		Value: model.Value{
			Label:      fmt.Sprintf("note_%d", key),
			Role:       role,
			Confidence: float64(on.vel) / 127,
		},
	}
}

// FromFile reads a MIDI file and converts it in one go.
func FromFile(path string, role string) (*model.Annotation, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return FromSMF(s, role), nil
}
