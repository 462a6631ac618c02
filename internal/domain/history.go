package domain

import "time"

// AnonymousOwner owns history written while authentication is disabled.
const AnonymousOwner = "anonymous"

type HistoryItem struct {
	HistoryID    string    `json:"id" dynamodbav:"history_id"`
	OwnerID      string    `json:"-" dynamodbav:"owner_id"`
	FromLanguage string    `json:"from_language" dynamodbav:"from_language"`
	FromText     string    `json:"from_text" dynamodbav:"from_text"`
	ToLanguage   string    `json:"to_language" dynamodbav:"to_language"`
	ToText       string    `json:"to_text" dynamodbav:"to_text"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
}

type TranslateRequest struct {
	Text string `json:"text" validate:"required,max=5000"`
	From string `json:"from" validate:"required,len=2,alpha"`
	To   string `json:"to" validate:"required,len=2,alpha"`
}

// HistoryExport describes an uploaded history snapshot.
type HistoryExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Items     int       `json:"items"`
	ExpiresAt time.Time `json:"expires_at"`
}
