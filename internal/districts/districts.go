// Package districts serves the static Bangladeshi district lookup used by
// sellers to tag a listing's location. The list ships inside the binary.
package districts

import (
	"encoding/json"
	"fmt"
	"sync"

	_ "embed"
)

// District is one entry of the static lookup.
type District struct {
	ID       string `json:"id"`
	Division string `json:"division"`
	Name     string `json:"name"`
}

//go:embed districts.json
var raw []byte

var (
	once      sync.Once
	districts []District
	parseErr  error
)

// All returns the embedded district list, parsed once.
func All() ([]District, error) {
	once.Do(func() {
		if err := json.Unmarshal(raw, &districts); err != nil {
			parseErr = fmt.Errorf("failed to parse embedded district data: %w", err)
		}
	})
	return districts, parseErr
}
