package common

const (
	SERVICE_ACCOUNT_KEY_PATH = "serviceAccountKey.json"
	EXCEL_FILE_PATH          = "questions_upload.xlsx"
	COLLECTION_NAME          = "poll_responses"
	RESPONSE_SOURCE          = "manual-upload"
)

// QUESTION_COLUMNS are the header labels read from the sheet, in the order
// they map to q1, q2, q3.
var QUESTION_COLUMNS = []string{"Q1", "Q2", "Q3"}

// Answer values stored in a response document.
const (
	ANSWER_YES         = "yes"
	ANSWER_NO          = "no"
	ANSWER_NO_RESPONSE = "no_response"
)
