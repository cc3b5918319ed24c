package domain

// DiffFile is a proposed change for one file: the content the proposal
// was based on and the content proposed in its place.
type DiffFile struct {
	Path   string `json:"path"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// Diff is a per-file change proposal produced by the synthesis engine.
// Its path set always equals the path set of the snapshot it was derived
// from. A Diff may be fed back in as context for a follow-up run but is
// otherwise ephemeral.
type Diff struct {
	ProjectID string     `json:"project_id"`
	Files     []DiffFile `json:"files"`
}

// Paths returns the diff's relative paths in diff order.
func (d *Diff) Paths() []string {
	paths := make([]string, 0, len(d.Files))
	for _, f := range d.Files {
		paths = append(paths, f.Path)
	}
	return paths
}
