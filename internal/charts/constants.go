package charts

const (
	// DefaultPadding is the margin around the plot area and between bars and labels.
	DefaultPadding = 8

	// DefaultBarThickness is the share of half a section a bar occupies.
	DefaultBarThickness = 0.8

	// DefaultLabelHeight is the height of the label band under vertical bars.
	DefaultLabelHeight = 32

	// DefaultLabelWidth is the width of the label band left of horizontal bars.
	DefaultLabelWidth = 96

	// labelShare is the share of a section a label box spans.
	labelShare = 0.8
)
