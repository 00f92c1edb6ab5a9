package types

// TitleConfig holds settings for title inference.
type TitleConfig struct {
	// Window is the context half-width, in characters, taken on each side
	// of a label occurrence when inferring a title (default 80).
	Window int `json:"window" yaml:"window"`

	// Keywords is the ordered list of deadline keywords scanned inside a
	// context window. The first match wins. Empty means the default list.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// OutputDir is the directory exported files are written to (default "out").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// ReportHeading is the heading line of the PDF report
	// (default "Course Calendar").
	ReportHeading string `json:"report_heading" yaml:"report_heading"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Title  TitleConfig  `json:"title" yaml:"title"`
	Export ExportConfig `json:"export" yaml:"export"`
}

// DefaultKeywords is the ordered keyword list used when TitleConfig does
// not override it. Order matters: the first keyword found in a context
// window becomes the title.
var DefaultKeywords = []string{
	"assignment",
	"quiz",
	"midterm",
	"exam",
	"presentation",
	"project",
	"lab",
}

const (
	// DefaultTitleWindow is the default context half-width for title inference.
	DefaultTitleWindow = 80

	// DefaultReportHeading is the default PDF report heading.
	DefaultReportHeading = "Course Calendar"

	// DefaultOutputDir is the default export directory.
	DefaultOutputDir = "out"
)
