package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/common/expfmt"
)

// Dump writes the current metric families to w in Prometheus text exposition
// format. The pipeline has no scrape endpoint; a snapshot at the end of the
// run is the only exposition surface.
func (m *Metrics) Dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("encoding metric family %s: %w", family.GetName(), err)
		}
	}
	return nil
}
