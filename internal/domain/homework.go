package domain

import "fmt"

// Status is a review status code reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every known status to its user-facing sentence.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Homework is one submission's review state as conveyed by the API.
// Fields are pointers because the API may omit them; StatusMessage is
// responsible for rejecting incomplete records.
type Homework struct {
	Name   *string `json:"homework_name"`
	Status *string `json:"status"`
}

// StatusReport is the API response envelope: the list of homeworks updated
// since the requested timestamp (newest first) and the server-side timestamp
// to use as the next poll cursor.
type StatusReport struct {
	Homeworks   []Homework
	CurrentDate int64
}

// StatusMessage renders the chat message for a status change.
func StatusMessage(hw Homework) (string, error) {
	if hw.Name == nil {
		return "", &MissingFieldError{Field: "homework_name"}
	}
	if hw.Status == nil {
		return "", &MissingFieldError{Field: "status"}
	}
	verdict, ok := verdicts[Status(*hw.Status)]
	if !ok {
		return "", &UnknownStatusError{Value: *hw.Status}
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", *hw.Name, verdict), nil
}
