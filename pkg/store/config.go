package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DriverDiskv stores the journal as a file managed by diskv.
	DriverDiskv = "diskv"
	// DriverSQLite stores the journal in a sqlite database.
	DriverSQLite = "sqlite"
)

// Config locates the journal and the files around it.
type Config interface {
	BasePath() string
	Driver() string
	ShareCommand() string
	ExportDir() string
	LogFile() string
}

// LoadConfig reads .gratitude.yaml from $GRATITUDE_CONFIG_PATH, the working
// directory or $HOME, with GRATITUDE_* environment variables taking priority.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.gratitude.db")
	v.SetDefault("storage.driver", DriverDiskv)
	v.SetDefault("share.command", "")
	v.SetDefault("export.dir", ".")
	v.SetDefault("log.file", "")
	v.SetConfigName(".gratitude") // .yaml is implicit
	v.SetEnvPrefix("GRATITUDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("GRATITUDE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	exportDir, err := homedir.Expand(v.GetString("export.dir"))
	if err != nil {
		return nil, err
	}
	logFile, err := homedir.Expand(v.GetString("log.file"))
	if err != nil {
		return nil, err
	}
	if logFile == "" {
		logFile = filepath.Join(path, "gratitude.log")
	}

	return &fileConfig{
		Path:    path,
		Storage: strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
		Share:   strings.TrimSpace(v.GetString("share.command")),
		Export:  exportDir,
		Log:     logFile,
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Storage string `json:"driver"`
	Share   string `json:"shareCommand"`
	Export  string `json:"exportDir"`
	Log     string `json:"logFile"`
}

func (f *fileConfig) BasePath() string     { return f.Path }
func (f *fileConfig) Driver() string       { return f.Storage }
func (f *fileConfig) ShareCommand() string { return f.Share }
func (f *fileConfig) ExportDir() string    { return f.Export }
func (f *fileConfig) LogFile() string      { return f.Log }
