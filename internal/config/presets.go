package config

var Presets = map[string]map[string]*Config{
	"dottie": {
		"quick": {
			Function: "dottie", Method: "cubic", X0: "1.0", Steps: 5, Backend: "float64",
		},
		"deep": {
			Function: "dottie", Method: "cubic", X0: "1.0", Steps: 7, Backend: "big", Prec: 2048,
		},
		"order": {
			Function: "dottie", Method: "cubic", X0: "1.0", Steps: 6, Backend: "big", Prec: 1024,
		},
	},
	"wallis": {
		"quick": {
			Function: "wallis", Method: "cubic", X0: "2.0", Steps: 5, Backend: "float64",
		},
		"deep": {
			Function: "wallis", Method: "cubic", X0: "2.0", Steps: 6, Backend: "big", Prec: 1024,
		},
		"newton": {
			Function: "wallis", Method: "newton", X0: "2.0", Steps: 12, Backend: "float64",
		},
	},
	"sqrt2": {
		"quick": {
			Function: "sqrt2", Method: "cubic", X0: "1.5", Steps: 5, Backend: "float64",
		},
		"halley": {
			Function: "sqrt2", Method: "halley", X0: "1.5", Steps: 6, Backend: "float64",
		},
		"deep": {
			Function: "sqrt2", Method: "cubic", X0: "1.5", Steps: 6, Backend: "big", Prec: 4096,
		},
	},
	"kepler": {
		"quick": {
			Function: "kepler", Method: "cubic", X0: "0.5", Steps: 6, Backend: "float64",
		},
		"deep": {
			Function: "kepler", Method: "cubic", X0: "0.5", Steps: 7, Backend: "big", Prec: 1024,
		},
	},
	"expfix": {
		"quick": {
			Function: "expfix", Method: "cubic", X0: "0.5", Steps: 5, Backend: "float64",
		},
	},
	"loggrow": {
		"quick": {
			Function: "loggrow", Method: "cubic", X0: "1.0", Steps: 6, Backend: "float64",
		},
	},
}

func GetPreset(function, preset string) *Config {
	functionPresets, ok := Presets[function]
	if !ok {
		return nil
	}
	cfg, ok := functionPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(function string) []string {
	functionPresets, ok := Presets[function]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(functionPresets))
	for name := range functionPresets {
		names = append(names, name)
	}
	return names
}
