package cmd

// Config carries runtime settings loaded from the environment.
type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	InventoryRangeLimit int
}
