package hello

// GreetResponse models the JSON greeting payload. It carries exactly one key.
type GreetResponse struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello Alice"`
}
