package dynamo

// DynamoDB attribute and index names for the history table.
const (
	fieldHistoryID = "history_id"
	fieldOwnerID   = "owner_id"
	fieldCreatedAt = "created_at"

	indexOwnerCreatedAt = "owner_id-created_at-index"
)
