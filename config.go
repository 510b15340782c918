package trialcalc

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config 配置结构
type Config struct {
	Display    *DisplayConfig    `mapstructure:"display" validate:"required"`
	Calculator *CalculatorConfig `mapstructure:"calculator" validate:"required"`
	Simulation *SimulationConfig `mapstructure:"simulation" validate:"required"`
	Log        *LogConfig        `mapstructure:"log" validate:"required"`
}

// DisplayConfig 显示配置
type DisplayConfig struct {
	Placeholder string `mapstructure:"placeholder" validate:"required"`
	Language    string `mapstructure:"language" validate:"required,oneof=en ja"`
	Color       bool   `mapstructure:"color"`
}

// CalculatorConfig 计算器配置
type CalculatorConfig struct {
	DefaultMode string `mapstructure:"default_mode" validate:"required,oneof=percentage fraction"`
}

// Mode returns the configured default input mode
func (c *CalculatorConfig) Mode() Mode {
	mode, err := ParseMode(c.DefaultMode)
	if err != nil {
		return DefaultMode
	}
	return mode
}

// SimulationConfig 模拟配置
type SimulationConfig struct {
	Rounds   int   `mapstructure:"rounds" validate:"gt=0"`
	MaxSteps int64 `mapstructure:"max_steps" validate:"gt=0,lte=1000000000"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn warning error fatal panic"`
}

var configValidator = validator.New()

// Validate checks every section against its validate tags
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ErrConfigInvalid.WithCause(err).WithDetails(verrs.Error())
		}
		return ErrConfigInvalid.WithCause(err)
	}
	return nil
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Display: &DisplayConfig{
			Placeholder: DefaultPlaceholder,
			Language:    DefaultLanguage,
			Color:       true,
		},
		Calculator: &CalculatorConfig{
			DefaultMode: DefaultMode.String(),
		},
		Simulation: &SimulationConfig{
			Rounds:   DefaultSimulationRounds,
			MaxSteps: DefaultSimulationMaxSteps,
		},
		Log: &LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ConfigManager 配置管理器
type ConfigManager struct {
	viper  *viper.Viper
	config *Config
	logger Logger
	mu     sync.RWMutex

	// file is the explicitly requested config file; it must exist
	file string
}

// NewConfigManager 创建配置管理器, 在默认路径中查找 trialcalc.yaml
func NewConfigManager() *ConfigManager {
	v := newViper()

	// 设置配置文件名和路径
	v.SetConfigName("trialcalc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/trialcalc")
	v.AddConfigPath("$HOME/.trialcalc")

	return &ConfigManager{viper: v, logger: NewSilentLogger()}
}

// NewConfigManagerWithFile 创建使用指定配置文件的配置管理器
func NewConfigManagerWithFile(path string) *ConfigManager {
	v := newViper()
	v.SetConfigFile(path)

	return &ConfigManager{viper: v, logger: NewSilentLogger(), file: path}
}

// NewDefaultConfigManager 创建仅包含默认配置的配置管理器
func NewDefaultConfigManager() *ConfigManager {
	cm := NewConfigManager()
	cm.setDefaults()
	cm.config = DefaultConfig()
	return cm
}

func newViper() *viper.Viper {
	v := viper.New()

	// 设置环境变量前缀
	v.SetEnvPrefix("TRIALCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// SetLogger sets the logger used to report reload failures
func (cm *ConfigManager) SetLogger(logger Logger) {
	if logger != nil {
		cm.logger = logger
	}
}

// LoadConfig 加载配置
func (cm *ConfigManager) LoadConfig() (*Config, error) {
	cm.setDefaults()

	if err := cm.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cm.file != "" || !errors.As(err, &notFound) {
			return nil, ErrConfigLoad.WithCause(err).WithDetails(err.Error())
		}
		// 配置文件不存在时使用默认配置
	}

	config, err := cm.decode()
	if err != nil {
		return nil, err
	}

	cm.setConfig(config)
	return config, nil
}

func (cm *ConfigManager) setConfig(config *Config) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.config = config
}

func (cm *ConfigManager) decode() (*Config, error) {
	config := &Config{}
	if err := cm.viper.Unmarshal(config); err != nil {
		return nil, ErrConfigLoad.WithCause(err).WithDetails(fmt.Sprintf("failed to unmarshal config: %v", err))
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// setDefaults 设置默认配置值
func (cm *ConfigManager) setDefaults() {
	cm.viper.SetDefault("display.placeholder", DefaultPlaceholder)
	cm.viper.SetDefault("display.language", DefaultLanguage)
	cm.viper.SetDefault("display.color", true)

	cm.viper.SetDefault("calculator.default_mode", DefaultMode.String())

	cm.viper.SetDefault("simulation.rounds", DefaultSimulationRounds)
	cm.viper.SetDefault("simulation.max_steps", DefaultSimulationMaxSteps)

	cm.viper.SetDefault("log.level", DefaultLogLevel)
}

// ConfigFileUsed returns the config file that was read, or "" when running on defaults
func (cm *ConfigManager) ConfigFileUsed() string { return cm.viper.ConfigFileUsed() }

// WatchConfig 监听配置变化. callback 只会收到通过校验的配置.
func (cm *ConfigManager) WatchConfig(callback func(*Config)) error {
	if cm.viper.ConfigFileUsed() == "" {
		return ErrConfigLoad.WithDetails("no config file to watch")
	}

	cm.viper.OnConfigChange(func(e fsnotify.Event) {
		config, err := cm.decode()
		if err != nil {
			cm.logger.Error("Ignoring config change in %s: %v", e.Name, err)
			return
		}

		cm.setConfig(config)
		cm.logger.Info("Config reloaded from %s", e.Name)
		if callback != nil {
			callback(config)
		}
	})
	cm.viper.WatchConfig()

	return nil
}

// GetConfig 获取当前配置, 包括热加载后的配置
func (cm *ConfigManager) GetConfig() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// ReloadConfig 重新加载配置
func (cm *ConfigManager) ReloadConfig() (*Config, error) { return cm.LoadConfig() }
