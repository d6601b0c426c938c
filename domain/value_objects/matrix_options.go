package value_objects

// MatrixOptions are the fixed parameters handed to the code-matrix
// generator. Width is the target edge length in pixels, Margin the quiet
// zone in modules, Level the error correction tier ("L", "M", "Q", "H").
type MatrixOptions struct {
	Width  int
	Margin int
	Level  string
	Dark   string
	Light  string
}
