package surveygizmo

import "encoding/json"

// ListEnvelope is the paginated wrapper around list responses.
//
// Numeric pagination fields arrive either as numbers or quoted strings
// depending on the endpoint, hence json.Number.
type ListEnvelope struct {
	ResultOK       bool            `json:"result_ok"`
	TotalCount     json.Number     `json:"total_count"`
	Page           json.Number     `json:"page"`
	TotalPages     json.Number     `json:"total_pages"`
	ResultsPerPage json.Number     `json:"results_per_page"`
	Data           json.RawMessage `json:"data"`
}

// ObjectEnvelope wraps single-object responses.
type ObjectEnvelope struct {
	ResultOK bool            `json:"result_ok"`
	Data     json.RawMessage `json:"data"`
}

// Survey represents a survey object.
type Survey struct {
	ID         string            `json:"id"`
	Type       string            `json:"_type"`
	SubType    string            `json:"_subtype"`
	Title      string            `json:"title"`
	Status     string            `json:"status"`
	CreatedOn  string            `json:"created_on"`
	ModifiedOn string            `json:"modified_on"`
	Links      map[string]string `json:"links"`
}

// SurveyResponse represents a single submitted response to a survey.
type SurveyResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	ContactID     string `json:"contact_id"`
	IsTestData    string `json:"is_test_data"`
	DateSubmitted string `json:"datesubmitted"`
	SessionID     string `json:"session_id"`
	Language      string `json:"language"`
}

// Campaign represents a survey distribution link or campaign.
type Campaign struct {
	ID           string `json:"id"`
	Type         string `json:"_type"`
	SubType      string `json:"_subtype"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	URI          string `json:"uri"`
	SSL          string `json:"SSL"`
	DateCreated  string `json:"datecreated"`
	DateModified string `json:"datemodified"`
}

// Question represents a question on a survey page.
type Question struct {
	ID          json.Number       `json:"id"`
	Type        string            `json:"_type"`
	SubType     string            `json:"_subtype"`
	Title       map[string]string `json:"title"`
	Shortname   string            `json:"shortname"`
	Description string            `json:"description"`
}

// DecodeList unmarshals a list envelope's data into a typed slice.
func DecodeList[T any](envelope *ListEnvelope) ([]T, error) {
	var items []T
	if len(envelope.Data) == 0 {
		return items, nil
	}

	err := json.Unmarshal(envelope.Data, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}
