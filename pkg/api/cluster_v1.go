// pkg/api/cluster_v1.go
package api

// MergeV1 is one linkage row. Node ids follow the linkage convention:
// leaves are 0..n-1 in sample order, the merge at step t creates node n+t.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MergeV1 struct {
	A      int     `json:"a"`
	B      int     `json:"b"`
	Height float64 `json:"height"`
	Size   int     `json:"size"`
}

// TreeV1 is the stable JSON schema for a merge tree.
type TreeV1 struct {
	K         int       `json:"k"`
	Metric    string    `json:"metric"`
	Canonical bool      `json:"canonical"`
	Labels    []string  `json:"labels"`
	Merges    []MergeV1 `json:"merges"`
}

// SegmentV1 is one dendrogram line primitive in plot coordinates.
type SegmentV1 struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// LabelV1 places a leaf label on the baseline.
type LabelV1 struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// LayoutV1 is the stable schema for a rendered-ready dendrogram layout.
type LayoutV1 struct {
	LeafOrder []int       `json:"leaf_order"`
	MaxHeight float64     `json:"max_height"`
	Segments  []SegmentV1 `json:"segments"`
	Labels    []LabelV1   `json:"labels"`
}

// ResultV1 is the top-level output document of a clustering run.
type ResultV1 struct {
	Tree   TreeV1   `json:"tree"`
	Layout LayoutV1 `json:"layout"`
}

// SampleCountsV1 is one sample's k-mer counts keyed by decoded k-mer.
type SampleCountsV1 struct {
	Label  string            `json:"label"`
	Total  uint64            `json:"total"`
	Counts map[string]uint64 `json:"counts"`
}

// CountsV1 is the stable schema for the per-sample counts document.
type CountsV1 struct {
	K         int              `json:"k"`
	Canonical bool             `json:"canonical"`
	Samples   []SampleCountsV1 `json:"samples"`
}
