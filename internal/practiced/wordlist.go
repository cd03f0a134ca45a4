package practiced

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry is one vocabulary item in a practice word list.
type Entry struct {
	Text        string  `json:"text"`
	Translation string  `json:"translation"`
	Difficulty  float64 `json:"difficulty,omitempty"`
}

// WordList is a named set of entries servable as a practice test.
type WordList struct {
	Code    string  `json:"code"`
	Title   string  `json:"title,omitempty"`
	Entries []Entry `json:"entries"`
}

// LoadWordLists reads one or more word lists from a JSON file. The file
// holds either a single list object or an array of them.
func LoadWordLists(path string) ([]WordList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	var lists []WordList
	if err := json.Unmarshal(data, &lists); err != nil {
		var single WordList
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return nil, fmt.Errorf("parse word list: %w", err)
		}
		lists = []WordList{single}
	}

	for i, l := range lists {
		if l.Code == "" {
			return nil, fmt.Errorf("word list %d: missing code", i)
		}
		if len(l.Entries) == 0 {
			return nil, fmt.Errorf("word list %q: no entries", l.Code)
		}
		for j, e := range l.Entries {
			if e.Text == "" || e.Translation == "" {
				return nil, fmt.Errorf("word list %q entry %d: text and translation required", l.Code, j)
			}
		}
	}
	return lists, nil
}
