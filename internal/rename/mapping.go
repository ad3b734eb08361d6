package rename

import (
	"encoding/json"
	"fmt"
)

// Mapping is a single source-to-destination rename. Paths are absolute.
type Mapping struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// invert swaps source and destination, turning an applied rename into the
// rename that undoes it.
func (m Mapping) invert() Mapping {
	return Mapping{Src: m.Dst, Dst: m.Src}
}

// UnmarshalJSON decodes a mapping record strictly: both "src" and "dst" must
// be present, and no other fields are accepted. Persisted queue state is the
// only thing standing between a half-applied batch and its revert, so a
// record that does not round-trip exactly is rejected outright.
func (m *Mapping) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if key != "src" && key != "dst" {
			return fmt.Errorf("mapping: unknown field %q", key)
		}
	}
	srcRaw, ok := raw["src"]
	if !ok {
		return fmt.Errorf("mapping: missing field %q", "src")
	}
	dstRaw, ok := raw["dst"]
	if !ok {
		return fmt.Errorf("mapping: missing field %q", "dst")
	}
	if err := json.Unmarshal(srcRaw, &m.Src); err != nil {
		return fmt.Errorf("mapping: field %q: %w", "src", err)
	}
	if err := json.Unmarshal(dstRaw, &m.Dst); err != nil {
		return fmt.Errorf("mapping: field %q: %w", "dst", err)
	}
	return nil
}
