package types

// Driver names a database/sql driver the tool can open.
type Driver string

const (
	DriverSQLite   Driver = "sqlite3"
	DriverMySQL    Driver = "mysql"
	DriverPostgres Driver = "postgres"
)

// Canonical maps accepted aliases ("sqlite", "pgx") to the driver they
// stand for. Unknown names are returned unchanged.
func (d Driver) Canonical() Driver {
	switch d {
	case "sqlite":
		return DriverSQLite
	case "pgx":
		return DriverPostgres
	}
	return d
}

// DatabaseConfig holds connection settings for the source database.
type DatabaseConfig struct {
	// Driver selects the database driver: sqlite3, mysql, or postgres (default sqlite3).
	Driver Driver `json:"driver" yaml:"driver" mapstructure:"driver"`

	// DSN is a file path for sqlite3 or a data source name for server databases.
	DSN string `json:"dsn" yaml:"dsn" mapstructure:"dsn"`

	// ReadOnly opens sqlite3 files with mode=ro (default true).
	ReadOnly bool `json:"read_only" yaml:"read_only" mapstructure:"read_only"`
}

// WritePolicy decides what happens when a single blob cannot be written.
type WritePolicy string

const (
	// AbortOnWriteError stops the run at the first failed write.
	AbortOnWriteError WritePolicy = "abort"

	// ContinueOnWriteError logs the failed row and moves on.
	ContinueOnWriteError WritePolicy = "continue"
)

// ExtractionConfig holds settings for an extraction run.
type ExtractionConfig struct {
	Database DatabaseConfig `json:"database" yaml:"database" mapstructure:"database"`

	// OutputDir is the output root (contains extracted_files.csv and category directories).
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// WritePolicy selects abort or continue on per-file write failures (default abort).
	WritePolicy WritePolicy `json:"write_policy" yaml:"write_policy" mapstructure:"write_policy"`

	// UniqueIDs rejects identifier columns that repeat a value before anything is written.
	UniqueIDs bool `json:"unique_ids" yaml:"unique_ids" mapstructure:"unique_ids"`
}
