package dynamo

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-translator/internal/domain"
)

// strKey builds a DynamoDB primary key map with a single string attribute.
func strKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// encodeCursor turns a LastEvaluatedKey into an opaque page token.
// Only string attributes appear in history keys.
func encodeCursor(key map[string]types.AttributeValue) (string, error) {
	if len(key) == 0 {
		return "", nil
	}
	flat := make(map[string]string, len(key))
	for k, v := range key {
		s, ok := v.(*types.AttributeValueMemberS)
		if !ok {
			return "", fmt.Errorf("cursor attribute %s is not a string", k)
		}
		flat[k] = s.Value
	}
	raw, err := json.Marshal(flat)
	if err != nil {
		return "", fmt.Errorf("encode cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// cursorFields is the exact key set of a LastEvaluatedKey on the owner index.
var cursorFields = []string{fieldHistoryID, fieldOwnerID, fieldCreatedAt}

// decodeCursor reverses encodeCursor. A malformed token, or one that is not a
// history index key, is a bad request.
func decodeCursor(cursor string) (map[string]types.AttributeValue, error) {
	if cursor == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor: %w", domain.ErrBadRequest)
	}
	var flat map[string]string
	if err := json.Unmarshal(raw, &flat); err != nil || len(flat) != len(cursorFields) {
		return nil, fmt.Errorf("invalid cursor: %w", domain.ErrBadRequest)
	}
	for _, f := range cursorFields {
		if flat[f] == "" {
			return nil, fmt.Errorf("invalid cursor: %w", domain.ErrBadRequest)
		}
	}
	key := make(map[string]types.AttributeValue, len(flat))
	for k, v := range flat {
		key[k] = &types.AttributeValueMemberS{Value: v}
	}
	return key, nil
}
