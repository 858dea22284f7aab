package growl

// Defaults holds process-wide widget settings read from the environment.
type Defaults struct {
	Type         Type   `env:"GROWL_DEFAULT_TYPE" envDefault:"info"`
	AssetBaseURL string `env:"GROWL_ASSET_BASE_URL"`
}

// Options converts d to build options.
func (d Defaults) Options() []Option {
	opts := []Option{WithAssetBaseURL(d.AssetBaseURL)}
	if d.Type != "" {
		opts = append(opts, WithDefaultType(d.Type))
	}
	return opts
}
