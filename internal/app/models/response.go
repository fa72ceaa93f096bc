package models

import "time"

// Answer is one submitted value in the order the respondent saw the
// questions. Value is a string, a number, a string slice or an upload URI
// depending on the question type.
type Answer struct {
	QuestionKey  string      `json:"questionKey" bson:"questionKey"`
	QuestionText string      `json:"questionText" bson:"questionText"`
	Section      string      `json:"section" bson:"section"`
	Type         string      `json:"type" bson:"type"`
	Value        interface{} `json:"value" bson:"value"`
}

type GeoPoint struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

type ResponseMeta struct {
	UserID    string    `json:"userId,omitempty" bson:"userId,omitempty"`
	Location  *GeoPoint `json:"location,omitempty" bson:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Response is the immutable record of one submission. It is created once and
// never updated.
type Response struct {
	ID         string       `json:"id" bson:"_id,omitempty"`
	TemplateID string       `json:"templateId" bson:"templateId"`
	Answers    []Answer     `json:"answers" bson:"answers"`
	Score      *int         `json:"score,omitempty" bson:"score,omitempty"`
	Passed     *bool        `json:"passed,omitempty" bson:"passed,omitempty"`
	Meta       ResponseMeta `json:"meta" bson:"meta"`
}
