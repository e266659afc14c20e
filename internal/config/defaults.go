package config

const (
	defaultStateDir       = "~/.local/share/playmate"
	defaultLogDir         = "~/.local/share/playmate/logs"
	defaultReadRevision   = "v4"
	defaultJournalEnabled = true
	defaultDateLayout     = "1/2/2006"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Format: Format{
			ReadRevision: defaultReadRevision,
		},
		Journal: Journal{
			Enabled: defaultJournalEnabled,
		},
		Intake: Intake{
			DateLayout: defaultDateLayout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Studies: defaultStudies(),
	}
}

func defaultStudies() []Study {
	return []Study{
		{Kind: "EMO", Suffix: "emo", Columns: []string{"emo_id_child", "emo_id_mom"}},
		{Kind: "LOC", Suffix: "loc", Columns: []string{"loc_id_child", "loc_id_mom"}},
		{Kind: "OBJ", Suffix: "obj", Columns: []string{"obj_id_child", "obj_id_mom"}},
		{Kind: "TRA", Suffix: "tra", Columns: []string{"transc_id"}},
	}
}
