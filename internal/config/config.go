package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"course-graph/internal/vocab"
)

type Config struct {
	// Conversion
	Language     string
	Workers      int
	SchemesFile  string
	FetchTimeout time.Duration

	// SFTP
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
	SFTPKnownHosts            string

	// S3
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
	S3Prefix    string
}

// Load reads the environment, after merging a .env file from the working
// directory if there is one.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		// Conversion
		Language:     getenv("XCRI_LANGUAGE", vocab.DefaultLanguage),
		Workers:      getenvInt("XCRI_WORKERS", 4),
		SchemesFile:  strings.TrimSpace(os.Getenv("XCRI_SCHEMES_FILE")),
		FetchTimeout: time.Duration(getenvInt("XCRI_FETCH_TIMEOUT_SECONDS", 60)) * time.Second,

		// SFTP
		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/inbound"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", false),
		SFTPKnownHosts:            strings.TrimSpace(os.Getenv("SFTP_KNOWN_HOSTS")),

		// S3
		S3Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3Region:    getenv("S3_REGION", "us-east-1"),
		S3AccessKey: strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey: strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		S3Bucket:    getenv("S3_BUCKET", "course-graph"),
		S3UseSSL:    getenvBool("S3_USE_SSL", true),
		S3Prefix:    strings.Trim(os.Getenv("S3_PREFIX"), "/"),
	}
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k)))
	if err != nil {
		return def
	}
	return v
}

func getenvBool(k string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(k)))
	if err != nil {
		return def
	}
	return v
}
