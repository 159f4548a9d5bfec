package db

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// Saved custom tunings live in a small DynamoDB table: PK is the tuning
// name, Notes is the comma separated note list. Defaults target a local
// dynamodb instance so the CLI works offline during development.

func tableName() string {
	if t := os.Getenv("TUNINGS_TABLE"); t != "" {
		return t
	}
	return "pedal-steel-tunings"
}

func newClient() *dynamodb.DynamoDB {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8000"
	}
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(sess)
}

// GetTuning fetches a saved tuning's note list by name. The second return
// is false when no tuning is saved under that name.
func GetTuning(name string) (string, bool) {
	client := newClient()
	out, err := client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(tableName()),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(name)},
		},
	})
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
	if out.Item == nil || out.Item["Notes"] == nil || out.Item["Notes"].S == nil {
		return "", false
	}
	return *out.Item["Notes"].S, true
}

// PutTuning saves a note list under a name, overwriting any previous save.
func PutTuning(name string, notes string) {
	client := newClient()
	_, err := client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(tableName()),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":    {S: aws.String(name)},
			"Notes": {S: aws.String(notes)},
		},
	})
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
}
