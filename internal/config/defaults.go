package config

const (
	defaultDarwinPath     = "/usr/local/bin/dnglab"
	defaultLinuxCommand   = "dnglab"
	defaultVersionTimeout = 10
	defaultCompression    = "lossless"
	defaultCrop           = "best"
	defaultStartDir       = "~/Desktop"
	defaultLogDir         = "~/.local/share/dngconv/logs"
	defaultLockPath       = "~/.local/share/dngconv/convert.lock"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// defaultExtensions is the camera raw list offered by the input picker.
var defaultExtensions = []string{
	".ari", ".cr3", ".cr2", ".crw", ".erf", ".raf", ".3fr", ".kdc",
	".dcs", ".dcr", ".iiq", ".mos", ".mef", ".mrw", ".nef", ".nrw",
	".orf", ".rw2", ".pef", ".srw", ".arw", ".srf", ".sr2",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		DNGLab: DNGLab{
			DarwinPath:     defaultDarwinPath,
			LinuxCommand:   defaultLinuxCommand,
			VersionTimeout: defaultVersionTimeout,
		},
		Defaults: Defaults{
			Compression: defaultCompression,
			Crop:        defaultCrop,
			EmbedRaw:    true,
		},
		Picker: Picker{
			StartDir:   defaultStartDir,
			Extensions: append([]string(nil), defaultExtensions...),
		},
		Paths: Paths{
			LogDir:   defaultLogDir,
			LockPath: defaultLockPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
