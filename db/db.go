package db

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/sirupsen/logrus"

	"annoscape/constants"
	"annoscape/model"
)

func strAttr(item map[string]*dynamodb.AttributeValue, name string) string {
	if attr, ok := item[name]; ok && attr.S != nil {
		return *attr.S
	}
	return ""
}

func numAttr(item map[string]*dynamodb.AttributeValue, name string) float64 {
	if attr, ok := item[name]; ok && attr.N != nil {
		num, _ := strconv.ParseFloat(*attr.N, 64)
		return num
	}
	return 0
}

// GetSourceMetadatas looks up provenance records for source files by
// filename. DynamoDB caps BatchGetItem well above this, but we keep the
// batch small so a single bad record doesn't fail a big request.
func GetSourceMetadatas(filenames []string) (map[string]model.SourceMetadata, error) {
	if len(filenames) > constants.MetadataBatchSize {
		return nil, fmt.Errorf("not supposed to pass in more than %v filenames", constants.MetadataBatchSize)
	}

	res := make(map[string]model.SourceMetadata)

	if len(filenames) == 0 {
		return res, nil
	}

	logrus.Debugf("looking up metadata for %v source files", len(filenames))

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetMetadataRegion()),
		Endpoint: aws.String(constants.GetMetadataEndpoint()),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a metadata session: %w", err)
	}

	table := constants.GetMetadataTable()
	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("metadata lookup failed: %w", err)
	}

	for _, item := range dbres.Responses[table] {
		res[strAttr(item, "PK")] = model.SourceMetadata{
			Collection:  strAttr(item, "Collection"),
			License:     strAttr(item, "License"),
			DurationSec: numAttr(item, "DurationSec"),
		}
	}

	return res, nil
}
