package models

import "encoding/json"

// Calendar is the guest-mode aggregate stored per calendar id. DailyBoxes
// is sparse and positionally indexed by day offset from StartDate. The
// aggregate may carry fields written by other parts of the app; those are
// kept verbatim across a read-modify-write cycle.
type Calendar struct {
	Title      string
	StartDate  string
	DailyBoxes []DailyBox

	rest map[string]json.RawMessage
}

// SetBoxAt places box at the given offset, growing the sequence as needed.
// Other indices are left untouched.
func (c *Calendar) SetBoxAt(offset int, box DailyBox) {
	if offset >= len(c.DailyBoxes) {
		grown := make([]DailyBox, offset+1)
		copy(grown, c.DailyBoxes)
		c.DailyBoxes = grown
	}
	c.DailyBoxes[offset] = box
}

// BoxAt returns the box at offset if one has been written there.
func (c *Calendar) BoxAt(offset int) (DailyBox, bool) {
	if offset < 0 || offset >= len(c.DailyBoxes) {
		return DailyBox{}, false
	}
	box := c.DailyBoxes[offset]
	if box.ID == "" {
		return DailyBox{}, false
	}
	return box, true
}

func (c *Calendar) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["title"]; ok {
		if err := json.Unmarshal(v, &c.Title); err != nil {
			return err
		}
		delete(raw, "title")
	}
	if v, ok := raw["startDate"]; ok {
		if err := json.Unmarshal(v, &c.StartDate); err != nil {
			return err
		}
		delete(raw, "startDate")
	}
	if v, ok := raw["dailyBoxes"]; ok {
		if err := json.Unmarshal(v, &c.DailyBoxes); err != nil {
			return err
		}
		delete(raw, "dailyBoxes")
	}

	c.rest = raw
	return nil
}

func (c Calendar) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.rest)+3)
	for k, v := range c.rest {
		out[k] = v
	}
	out["title"] = c.Title
	out["startDate"] = c.StartDate
	if c.DailyBoxes == nil {
		out["dailyBoxes"] = []DailyBox{}
	} else {
		out["dailyBoxes"] = c.DailyBoxes
	}
	return json.Marshal(out)
}
