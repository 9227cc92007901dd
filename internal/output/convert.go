// internal/output/convert.go
package output

import (
	"sort"

	"kclust-core/cluster"
	"kclust-core/counter"
	"kclust-core/dendro"
	"kclust-core/kmer"

	"kclust/pkg/api"
)

// ToAPITree converts a merge tree to the stable wire schema (v1).
func ToAPITree(t *cluster.Tree, labels []string, k int, metric string, canonical bool) api.TreeV1 {
	out := api.TreeV1{
		K:         k,
		Metric:    metric,
		Canonical: canonical,
		Labels:    append([]string(nil), labels...),
		Merges:    make([]api.MergeV1, 0, len(t.Merges)),
	}
	for _, m := range t.Merges {
		out.Merges = append(out.Merges, api.MergeV1{A: m.A, B: m.B, Height: m.Height, Size: m.Size})
	}
	return out
}

// ToAPILayout converts a dendrogram layout to the stable wire schema (v1).
func ToAPILayout(l *dendro.Layout) api.LayoutV1 {
	out := api.LayoutV1{
		LeafOrder: append([]int(nil), l.LeafOrder...),
		MaxHeight: l.MaxHeight(),
		Segments:  make([]api.SegmentV1, 0, len(l.Segments)),
		Labels:    make([]api.LabelV1, 0, len(l.Labels)),
	}
	for _, s := range l.Segments {
		out.Segments = append(out.Segments, api.SegmentV1{X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2})
	}
	for _, lb := range l.Labels {
		out.Labels = append(out.Labels, api.LabelV1{Text: lb.Text, X: lb.X, Y: lb.Y})
	}
	return out
}

// ToAPICounts decodes every key back to its k-mer string so the counts
// document is self-describing. Sample order follows labels; map keys are
// emitted sorted by encoding/json, which matches key order because the
// packing preserves lexicographic order.
func ToAPICounts(coder *kmer.Coder, canonical bool, labels []string, counts []counter.Counts) api.CountsV1 {
	out := api.CountsV1{
		K:         coder.K(),
		Canonical: canonical,
		Samples:   make([]api.SampleCountsV1, 0, len(labels)),
	}
	for i, label := range labels {
		m := make(map[string]uint64, len(counts[i]))
		keys := make([]uint64, 0, len(counts[i]))
		for k := range counts[i] {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
		for _, k := range keys {
			m[coder.Decode(k)] = counts[i][k]
		}
		out.Samples = append(out.Samples, api.SampleCountsV1{
			Label:  label,
			Total:  counts[i].Total(),
			Counts: m,
		})
	}
	return out
}
