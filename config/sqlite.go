package config

type Sqlite struct {
	Path string `json:"path" yaml:"path"`
}
