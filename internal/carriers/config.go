package carriers

// Config tells the Manager where to find its input
type Config struct {
	// DataPath is a directory of carrier files or a single carrier file
	DataPath string
	Verbose  bool
}
