package constants

const (
	AppName        = `nrrdnote`
	Version        = `0.1.0`
	ConfigDir      = `/.config/nrrdnote/`
	ConfigFile     = `config`
	ConfigFileType = `yaml`

	DefaultNotebook = `default`
	DefaultDataDir  = `/.local/share/nrrdnote`
)
