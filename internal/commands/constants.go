package commands

const (
	// DefaultImageWidth is the svg/png/json/yaml width when --width is unset.
	DefaultImageWidth = 640

	// DefaultImageHeight is the svg/png/json/yaml height when --height is unset.
	DefaultImageHeight = 400

	// MaxTerminalLabelWidth caps the label band of horizontal terminal charts.
	MaxTerminalLabelWidth = 24
)
