package db

import (
	"encoding/json"
	"os"

	"github.com/Glubus/minacalc-go/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "minacalc-scores"

func newClient() *dynamodb.DynamoDB {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8000"
	}
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(session)
}

// GetChartScores fetches precomputed all-rates scores for up to 10 chart
// hashes at once.
func GetChartScores(hashes []string) map[string]model.ChartScores {
	if len(hashes) > 10 {
		panic("Not supposed to pass in more than 10 hashes!")
	}

	res := make(map[string]model.ChartScores)

	if len(hashes) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, hash := range hashes {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(hash),
		}
		keys = append(keys, key)
	}

	client := newClient()
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[tableName] {
		var cs model.ChartScores
		if v["Scores"].S != nil {
			if err := json.Unmarshal([]byte(*v["Scores"].S), &cs.AllRates); err != nil {
				panic("Could not unmarshal scores: " + err.Error())
			}
		}
		if v["Title"].S != nil {
			cs.Title = *v["Title"].S
		}
		res[*v["PK"].S] = cs
	}

	return res
}

// PutChartScores stores one chart's all-rates scores keyed by its hash.
func PutChartScores(hash string, scores model.ChartScores) {
	data, err := json.Marshal(scores.AllRates)
	if err != nil {
		panic("Could not marshal scores: " + err.Error())
	}

	client := newClient()
	input := &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":     {S: aws.String(hash)},
			"Title":  {S: aws.String(scores.Title)},
			"Scores": {S: aws.String(string(data))},
		},
	}
	if _, err := client.PutItem(input); err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
}
