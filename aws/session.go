package s3

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	aws_s3 "github.com/aws/aws-sdk-go/service/s3"
)

type AWSConfig struct {
	AccessKeyID     string
	AccessKeySecret string
	Region          string
}

func CreateSession(awsConfig AWSConfig) *session.Session {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(awsConfig.Region),
		Credentials: credentials.NewStaticCredentials(
			awsConfig.AccessKeyID,
			awsConfig.AccessKeySecret,
			"",
		),
	}))
	return sess
}

func CreateS3Session(sess *session.Session) *aws_s3.S3 {
	return aws_s3.New(sess)
}
