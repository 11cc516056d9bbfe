package domain

// Viridis is the six-color depth palette, shallowest first.
var Viridis = [6]string{
	"#440154", "#3E4A89", "#31688E", "#35B779", "#A6D96A", "#FDE725",
}

// DepthBucket is a half-open depth range (Lower, Upper] in kilometers.
type DepthBucket struct {
	Lower float64
	Upper float64
	Label string
}

// DepthBuckets are the finite buckets tested in order. Anything that matches
// none of them falls into the terminal bucket at index len(DepthBuckets).
var DepthBuckets = [5]DepthBucket{
	{Lower: -10, Upper: 10, Label: "-10 to 10"},
	{Lower: 10, Upper: 30, Label: "10 to 30"},
	{Lower: 30, Upper: 50, Label: "30 to 50"},
	{Lower: 50, Upper: 70, Label: "50 to 70"},
	{Lower: 70, Upper: 90, Label: "70 to 90"},
}

// TerminalDepthLabel labels the catch-all bucket.
const TerminalDepthLabel = "90+"

// DepthBucketIndex returns the index (0-5) of the bucket depth falls in.
// Depths <= -10, > 90 and NaN all land in bucket 5.
func DepthBucketIndex(depth float64) int {
	for i, b := range DepthBuckets {
		if depth > b.Lower && depth <= b.Upper {
			return i
		}
	}
	return len(DepthBuckets)
}

// DepthColor returns the viridis color for a depth in kilometers.
func DepthColor(depth float64) string {
	return Viridis[DepthBucketIndex(depth)]
}

// DepthLabel returns the legend label of the bucket depth falls in.
func DepthLabel(depth float64) string {
	return depthLabelAt(DepthBucketIndex(depth))
}

func depthLabelAt(i int) string {
	if i < len(DepthBuckets) {
		return DepthBuckets[i].Label
	}
	return TerminalDepthLabel
}
