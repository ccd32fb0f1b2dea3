package config

// SettingsMenuConfig contains options screen configuration
type SettingsMenuConfig struct {
	VolumeSteps    []float64
	DefaultName    string
	TuningFile     string
	SettingsAppKey string
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps:    []float64{0, 0.25, 0.5, 0.75, 1.0},
		DefaultName:    "Player 1",
		TuningFile:     "shapefighter.yaml",
		SettingsAppKey: "shapefighter",
	}
}

// NextVolumeStep returns the step after v, wrapping to the quietest step.
func NextVolumeStep(v float64) float64 {
	steps := SettingsMenu.VolumeSteps
	for _, s := range steps {
		if s > v+1e-9 {
			return s
		}
	}
	return steps[0]
}

// PrevVolumeStep returns the step before v, wrapping to the loudest step.
func PrevVolumeStep(v float64) float64 {
	steps := SettingsMenu.VolumeSteps
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i] < v-1e-9 {
			return steps[i]
		}
	}
	return steps[len(steps)-1]
}
