package config

// GetMajorsSourceURL returns the page the majors scraper targets
func GetMajorsSourceURL() string {
	return GetEnvOrDefault("MAJORS_SOURCE_URL", "https://undergrad.osu.edu/majors-and-academics/majors")
}
