package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Inputs struct {
			RideLog  string `yaml:"ride_log"`
			Segments string `yaml:"segments"`
			Places   string `yaml:"places"`
		} `yaml:"inputs"`
		Places struct {
			StartYear       int       `yaml:"start_year"`
			StartMonth      int       `yaml:"start_month"`
			BonusThresholds []float64 `yaml:"bonus_thresholds"`
		} `yaml:"places"`
		Eddington struct {
			YearCutoff int   `yaml:"year_cutoff"`
			Targets    []int `yaml:"targets"`
		} `yaml:"eddington"`
		Estimator struct {
			Degree int `yaml:"degree"`
		} `yaml:"estimator"`
		REST *struct {
			ListenAddr string `yaml:"listen_addr"`
			Port       int    `yaml:"port"`
		} `yaml:"rest"`
	}

	if err := yaml.Unmarshal(cfgFile, &yamlConfig); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", y.filename, err)
	}

	// Convert to our internal format
	config := &ConfigData{
		Inputs: InputsData{
			RideLog:  yamlConfig.Inputs.RideLog,
			Segments: yamlConfig.Inputs.Segments,
			Places:   yamlConfig.Inputs.Places,
		},
		Places: PlacesData{
			StartYear:       yamlConfig.Places.StartYear,
			StartMonth:      yamlConfig.Places.StartMonth,
			BonusThresholds: yamlConfig.Places.BonusThresholds,
		},
		Eddington: EddingtonData{
			YearCutoff: yamlConfig.Eddington.YearCutoff,
			Targets:    yamlConfig.Eddington.Targets,
		},
		Estimator: EstimatorData{
			Degree: yamlConfig.Estimator.Degree,
		},
	}

	if yamlConfig.REST != nil {
		config.REST = &RESTServerData{
			ListenAddr: yamlConfig.REST.ListenAddr,
			Port:       yamlConfig.REST.Port,
		}
	}

	return config, nil
}

// IsReadOnly returns true; YAML files are edited by hand, not through the app
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML providers
func (y *YAMLProvider) Close() error {
	return nil
}
