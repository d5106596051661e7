package cmd

import (
	"os"
	"strconv"

	"github.com/achilleasa/aobench/output"
	"github.com/joho/godotenv"
)

// Environment variables holding the S3 upload settings.
const (
	envS3AccessKey  = "AOBENCH_S3_ACCESS_KEY"
	envS3SecretKey  = "AOBENCH_S3_SECRET_KEY"
	envS3Endpoint   = "AOBENCH_S3_ENDPOINT"
	envS3Region     = "AOBENCH_S3_REGION"
	envS3DisableSSL = "AOBENCH_S3_DISABLE_SSL"
)

// Load S3 settings from the environment. If envFile exists its values are
// loaded first; variables already present in the environment take precedence.
func loadS3Config(envFile string) output.S3Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			logger.Warningf("could not load env file %s: %s", envFile, err)
		}
	}

	disableSSL, _ := strconv.ParseBool(os.Getenv(envS3DisableSSL))
	return output.S3Config{
		AccessKey:  os.Getenv(envS3AccessKey),
		SecretKey:  os.Getenv(envS3SecretKey),
		Endpoint:   os.Getenv(envS3Endpoint),
		Region:     os.Getenv(envS3Region),
		DisableSSL: disableSSL,
	}
}
