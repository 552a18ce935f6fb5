package config

// GetAWSRegion returns the AWS region used for Bedrock calls
func GetAWSRegion() string {
	return GetEnvOrDefault("AWS_REGION", "us-east-1")
}
