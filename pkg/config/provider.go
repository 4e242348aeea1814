package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Inputs    InputsData     `json:"inputs"`
	Places    PlacesData     `json:"places,omitempty"`
	Eddington EddingtonData  `json:"eddington,omitempty"`
	Estimator EstimatorData  `json:"estimator,omitempty"`
	REST      *RESTServerData `json:"rest,omitempty"`
}

// InputsData holds the paths of the three flat-text input files.
type InputsData struct {
	RideLog  string `json:"ride_log"`
	Segments string `json:"segments"`
	Places   string `json:"places"`
}

// PlacesData configures the road-coverage parse: which month the first
// percentage column represents and which coverage milestones to annotate.
type PlacesData struct {
	StartYear       int       `json:"start_year"`
	StartMonth      int       `json:"start_month"`
	BonusThresholds []float64 `json:"bonus_thresholds,omitempty"`
}

// EddingtonData configures the Eddington computation: the first year of
// rides to include and the goal numbers to report gaps for.
type EddingtonData struct {
	YearCutoff int   `json:"year_cutoff,omitempty"`
	Targets    []int `json:"targets,omitempty"`
}

// EstimatorData configures the ride-time estimator's curve fit.
type EstimatorData struct {
	Degree int `json:"degree,omitempty"`
}

// RESTServerData configures the chart-feed API server. When absent the
// program prints a one-shot report instead of serving.
type RESTServerData struct {
	ListenAddr string `json:"listen_addr,omitempty"`
	Port       int    `json:"port,omitempty"`
}
