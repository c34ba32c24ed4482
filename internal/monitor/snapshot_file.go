package monitor

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// LoadSnapshot reads a snapshot saved as YAML, typically by WriteSnapshot.
func LoadSnapshot(path string) (*HostSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSnapshot,
			fmt.Sprintf("Couldn't read snapshot %s", path),
			"Check the file exists and is readable.")
	}

	return ParseSnapshot(data)
}

// ParseSnapshot decodes a YAML snapshot. Unknown keys are rejected so typos
// don't silently render as zeros.
func ParseSnapshot(data []byte) (*HostSnapshot, error) {
	snap := &HostSnapshot{}
	if len(data) == 0 {
		return snap, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(snap); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.ErrSnapshot,
			"Snapshot file is not valid",
			"Check the YAML syntax and field names, or regenerate it with 'sysmon snapshot'.")
	}
	return snap, nil
}

// WriteSnapshot encodes s as YAML.
func WriteSnapshot(w io.Writer, s *HostSnapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.WrapWithCode(err, errors.ErrSnapshot,
			"Couldn't encode snapshot", "")
	}
	if err := enc.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrSnapshot,
			"Couldn't write snapshot", "")
	}
	return nil
}
