package styles

// ColorScheme holds the ANSI color codes the UI is drawn with.
type ColorScheme struct {
	Primary   string `yaml:"primary"`
	Accent    string `yaml:"accent"`
	Success   string `yaml:"success"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Normal    string `yaml:"normal"`
	Highlight string `yaml:"highlight"`
}

var DefaultScheme = ColorScheme{
	Primary:   "205", // magenta - titles, headers
	Accent:    "86",  // cyan - emphasis
	Success:   "171", // purple - confirmations
	Error:     "196", // red
	Muted:     "238", // gray - borders, help text
	Normal:    "252", // light gray - cell text
	Highlight: "62",  // dark cyan - selection background
}

var schemes = map[string]ColorScheme{
	"default": DefaultScheme,
	"ocean": {
		Primary:   "39",
		Accent:    "45",
		Success:   "42",
		Error:     "203",
		Muted:     "240",
		Normal:    "253",
		Highlight: "24",
	},
	"sunset": {
		Primary:   "208",
		Accent:    "214",
		Success:   "220",
		Error:     "160",
		Muted:     "241",
		Normal:    "255",
		Highlight: "94",
	},
}

func GetScheme(name string) ColorScheme {
	if scheme, ok := schemes[name]; ok {
		return scheme
	}
	return DefaultScheme
}
