package stats

import (
	"fmt"
	"sort"
	"strings"

	dto "github.com/prometheus/client_model/go"
)

// Returns a compact multi-line text summary of the collected
// counters, suitable for debug overlays and exit reports.
func (self *Collector) Summary() (string, error) {
	families, err := self.registry.Gather()
	if err != nil {
		return "", err
	}

	var lines []string
	for _, family := range families {
		if family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, metric := range family.GetMetric() {
			name := family.GetName()
			if labels := metric.GetLabel(); len(labels) > 0 {
				pairs := make([]string, len(labels))
				for i, label := range labels {
					pairs[i] = label.GetName() + "=" + label.GetValue()
				}
				name += "{" + strings.Join(pairs, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, metric.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n"), nil
}
