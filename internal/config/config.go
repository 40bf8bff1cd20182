// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	ShowFPS    bool   `yaml:"show_fps"`
}

// CameraConfig holds the initial perspective camera.
type CameraConfig struct {
	FovY     float32    `yaml:"fov"` // degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
}

// SceneConfig holds what the demos put in the scene.
type SceneConfig struct {
	// Soldier demo
	Model         string  `yaml:"model"`      // glTF/GLB path
	ModelName     string  `yaml:"model_name"` // name given to the model root
	Clip          string  `yaml:"clip"`       // clip played on load
	FadeIn        float32 `yaml:"fade_in"`    // seconds, 0 disables
	GroundSize    float32 `yaml:"ground_size"`
	GridDivisions int     `yaml:"grid_divisions"`
	AmbientLight  float32 `yaml:"ambient_intensity"`

	// Skybox demo
	CubeSize     float32 `yaml:"cube_size"`
	SkyboxSize   float32 `yaml:"skybox_size"`
	SkyboxPeriod float32 `yaml:"skybox_period"` // seconds per turn
}

// AssetsConfig holds model search directories.
type AssetsConfig struct {
	Dirs []string `yaml:"dirs"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "scenepick",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    true,
		},
		Camera: CameraConfig{
			FovY:     75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{0, 5, 5},
			Target:   [3]float32{0, 0, 0},
		},
		Scene: SceneConfig{
			Model:         "Soldier.glb",
			ModelName:     "Soldier",
			Clip:          "Walk",
			GroundSize:    100,
			GridDivisions: 100,
			AmbientLight:  2,
			CubeSize:      1,
			SkyboxSize:    500,
			SkyboxPeriod:  60,
		},
		Assets: AssetsConfig{
			Dirs: []string{"assets"},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
