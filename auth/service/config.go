package service

type Config struct {
	// Storage selects the credential store backend, "sqlite" (default)
	// or "postgres".
	Storage    string `toml:"storage"`
	SqliteFile string `toml:"sqlite_file"`
	Token      string `toml:"token"`
	Expiration string `toml:"expiration"`
	// BcryptCost of 0 means bcrypt.DefaultCost.
	BcryptCost int           `toml:"bcrypt_cost"`
	Rules      []Rule        `toml:"rules"`
	DB         StorageConfig `toml:"db"`
}

// Rule allows the listed roles to hit the matching path/method. "*" in
// Allow admits guests, "*" in Method matches every method.
type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
}

type StorageConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	DBName   string `toml:"dbname"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}
