// Package stats computes summary figures for the collections stats panel.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/nvalla/walletview/pkg/model"
)

// Summary holds floor-price aggregates over a set of collections.
type Summary struct {
	Collections int
	Assets      int
	TotalFloor  float64
	MeanFloor   float64
	MedianFloor float64
	MaxFloor    float64
}

// Summarize computes floor-price statistics. Collections without a floor
// price still count toward totals but not toward mean/median.
func Summarize(collections []model.Collection) Summary {
	s := Summary{Collections: len(collections)}

	var priced []float64
	for _, c := range collections {
		s.Assets += len(c.Assets)
		s.TotalFloor += c.FloorPrice
		if c.FloorPrice > 0 {
			priced = append(priced, c.FloorPrice)
			if c.FloorPrice > s.MaxFloor {
				s.MaxFloor = c.FloorPrice
			}
		}
	}
	if len(priced) == 0 {
		return s
	}

	sort.Float64s(priced)
	s.MeanFloor = stat.Mean(priced, nil)
	s.MedianFloor = stat.Quantile(0.5, stat.Empirical, priced, nil)
	return s
}
