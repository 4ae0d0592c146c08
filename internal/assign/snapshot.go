package assign

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
)

// Snapshot is an immutable view of the roster the matcher runs against.
type Snapshot struct {
	Employees []matching.Employee `json:"employees"`
	Skills    []matching.Skill    `json:"skills"`
	Catalog   matching.Catalog    `json:"-"`
	Version   string              `json:"version"`
	FetchedAt time.Time           `json:"fetched_at"`
}

// NewSnapshot indexes the skills and fingerprints the content, so two fetches
// of an unchanged roster share a version.
func NewSnapshot(employees []matching.Employee, skills []matching.Skill, fetchedAt time.Time) *Snapshot {
	return &Snapshot{
		Employees: employees,
		Skills:    skills,
		Catalog:   matching.NewCatalog(skills),
		Version:   fingerprint(employees, skills),
		FetchedAt: fetchedAt,
	}
}

func (s *Snapshot) Employee(id string) (matching.Employee, bool) {
	for _, e := range s.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return matching.Employee{}, false
}

func fingerprint(employees []matching.Employee, skills []matching.Skill) string {
	d := xxhash.New()
	enc := json.NewEncoder(d)
	_ = enc.Encode(employees)
	_ = enc.Encode(skills)
	return fmt.Sprintf("%016x", d.Sum64())
}
