package types

// MainLoggerConfig adjusts the node's main logger; nil fields leave the
// corresponding setting unchanged.
type MainLoggerConfig struct {
	Filter   *string `json:"filter"`
	ToStdout *bool   `json:"to_stdout"`
	ToFile   *bool   `json:"to_file"`
	Color    *bool   `json:"color"`
}

// ExtraLoggerConfig configures a named extra logger.
type ExtraLoggerConfig struct {
	Filter string `json:"filter"`
}
