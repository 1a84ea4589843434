package ui

import "github.com/ftahirops/logradar/model"

// sparkGlyphs are the 8 block-height glyphs a bucket value maps onto.
var sparkGlyphs = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

// renderSparkline projects a pattern's committed buckets plus its
// in-progress bucket into a glyph string, one glyph per bucket, so its
// width grows with the number of committed buckets. A soft cap derived
// from the mean of the nonzero buckets (the in-progress one included)
// keeps one outlier spike from flattening the rest of the history into
// invisibility. The in-progress bucket is rendered last; the string
// carries no styling, so no bucket is dimmed or emphasized.
func renderSparkline(p model.Pattern) string {
	buckets := append(append([]uint16(nil), p.SparklineBuckets...), p.CurrentBucket)
	if len(buckets) == 0 {
		return ""
	}

	var sum, nonzero int
	for _, b := range buckets {
		if b > 0 {
			sum += int(b)
			nonzero++
		}
	}
	cap := 1.0
	if nonzero > 0 {
		cap = float64(sum) / float64(nonzero) * 3.0
		if cap < 1 {
			cap = 1
		}
	}

	out := make([]rune, len(buckets))
	for i, b := range buckets {
		if b == 0 {
			out[i] = ' '
			continue
		}
		ratio := float64(b) / cap
		if ratio > 1 {
			ratio = 1
		}
		level := int(ratio*7 + 0.5)
		out[i] = sparkGlyphs[level]
	}
	return string(out)
}
